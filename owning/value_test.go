package owning

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Value", func() {
	It("should construct with a fresh auxiliary slot", func() {
		v := NewValue(15)

		Expect(v.Value()).To(Equal(15))
		aux, present := v.Auxiliary()
		Expect(present).To(BeTrue())
		Expect(aux).To(Equal(18))
		Expect(v.MovedFrom()).To(BeFalse())
	})

	It("should construct with the default state", func() {
		v := NewDefaultValue()

		Expect(v.Value()).To(Equal(0))
		aux, _ := v.Auxiliary()
		Expect(aux).To(Equal(3))
	})

	It("should assign a stable, unique identity token", func() {
		a := NewValue(1)
		b := NewValue(2)

		Expect(a.Name()).NotTo(BeEmpty())
		Expect(a.Name()).NotTo(Equal(b.Name()))
		Expect(a.Name()).To(Equal(a.Name()))
	})

	Context("when copy constructing", func() {
		It("should copy the state into an independent slot", func() {
			a := NewValue(15)
			b := CopyOf(a)

			Expect(b.Value()).To(Equal(15))
			aux, present := b.Auxiliary()
			Expect(present).To(BeTrue())
			Expect(aux).To(Equal(18))
			Expect(b.auxiliary).NotTo(BeIdenticalTo(a.auxiliary))
		})

		It("should not mutate the source", func() {
			a := NewValue(15)
			CopyOf(a)

			Expect(a.Value()).To(Equal(15))
			aux, present := a.Auxiliary()
			Expect(present).To(BeTrue())
			Expect(aux).To(Equal(18))
		})
	})

	Context("when copy assigning", func() {
		It("should overwrite the destination", func() {
			a := NewValue(15)
			c := NewDefaultValue()

			ret := c.CopyFrom(a)

			Expect(ret).To(BeIdenticalTo(c))
			Expect(c.Value()).To(Equal(15))
			aux, _ := c.Auxiliary()
			Expect(aux).To(Equal(18))
			Expect(c.auxiliary).NotTo(BeIdenticalTo(a.auxiliary))
		})

		It("should support chained assignment", func() {
			a := NewValue(15)
			b := NewDefaultValue()
			c := NewDefaultValue()

			c.CopyFrom(b.CopyFrom(a))

			Expect(b.Value()).To(Equal(15))
			Expect(c.Value()).To(Equal(15))
		})

		It("should leave a self-assigned value untouched", func() {
			x := NewValue(15)
			slot := x.auxiliary

			x.CopyFrom(x)

			Expect(x.Value()).To(Equal(15))
			aux, present := x.Auxiliary()
			Expect(present).To(BeTrue())
			Expect(aux).To(Equal(18))
			Expect(x.auxiliary).To(BeIdenticalTo(slot))
		})
	})

	Context("when move constructing", func() {
		It("should transfer the slot without reallocation", func() {
			a := NewValue(15)
			slot := a.auxiliary

			d := MoveOf(a)

			Expect(d.Value()).To(Equal(15))
			aux, present := d.Auxiliary()
			Expect(present).To(BeTrue())
			Expect(aux).To(Equal(18))
			Expect(d.auxiliary).To(BeIdenticalTo(slot))
		})

		It("should reset the source to the moved-from state", func() {
			a := NewValue(15)

			MoveOf(a)

			Expect(a.Value()).To(Equal(0))
			Expect(a.MovedFrom()).To(BeTrue())
			_, present := a.Auxiliary()
			Expect(present).To(BeFalse())
		})
	})

	Context("when move assigning", func() {
		It("should transfer the slot and reset the source", func() {
			b := NewValue(15)
			e := NewDefaultValue()
			slot := b.auxiliary

			ret := e.MoveFrom(b)

			Expect(ret).To(BeIdenticalTo(e))
			Expect(e.Value()).To(Equal(15))
			Expect(e.auxiliary).To(BeIdenticalTo(slot))
			Expect(b.Value()).To(Equal(0))
			Expect(b.MovedFrom()).To(BeTrue())
		})

		It("should leave a self-assigned value untouched", func() {
			x := NewValue(15)
			slot := x.auxiliary

			x.MoveFrom(x)

			Expect(x.Value()).To(Equal(15))
			Expect(x.MovedFrom()).To(BeFalse())
			Expect(x.auxiliary).To(BeIdenticalTo(slot))
		})
	})

	Context("when destroying", func() {
		It("should release the slot", func() {
			v := NewValue(15)

			v.Destroy()

			Expect(v.MovedFrom()).To(BeTrue())
		})

		It("should be safe on a moved-from value", func() {
			a := NewValue(15)
			d := MoveOf(a)

			Expect(a.Destroy).NotTo(Panic())

			aux, present := d.Auxiliary()
			Expect(present).To(BeTrue())
			Expect(aux).To(Equal(18))
		})

		It("should be safe to destroy twice", func() {
			v := NewValue(15)

			v.Destroy()

			Expect(v.Destroy).NotTo(Panic())
		})
	})
})
