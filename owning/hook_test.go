package owning

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Hooks", func() {
	var (
		mockCtrl *gomock.Controller
		hook     *MockHook
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		hook = NewMockHook(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should invoke the hook on construction", func() {
		var ctx HookCtx
		hook.EXPECT().Func(gomock.Any()).
			Do(func(c HookCtx) { ctx = c }).
			Times(1)

		v := NewValue(15, hook)

		Expect(ctx.Pos).To(BeIdenticalTo(HookPosConstruct))
		Expect(ctx.Domain).To(BeIdenticalTo(v))
		Expect(ctx.Item).To(Equal(Transition{
			Object:     v.Name(),
			Op:         string(OpConstruct),
			Value:      15,
			Auxiliary:  18,
			AuxPresent: true,
		}))
	})

	It("should propagate hooks to copies", func() {
		hook.EXPECT().Func(gomock.Any()).Times(2)

		a := NewValue(15, hook)
		b := CopyOf(a)

		Expect(b.NumHooks()).To(Equal(1))
	})

	It("should propagate hooks to move destinations", func() {
		var poses []*HookPos
		hook.EXPECT().Func(gomock.Any()).
			Do(func(c HookCtx) { poses = append(poses, c.Pos) }).
			Times(2)

		a := NewValue(15, hook)
		MoveOf(a)

		Expect(poses).To(Equal([]*HookPos{
			HookPosConstruct,
			HookPosMoveConstruct,
		}))
	})

	It("should invoke the hook twice on destruction", func() {
		var items []Transition
		hook.EXPECT().Func(gomock.Any()).
			Do(func(c HookCtx) { items = append(items, c.Item.(Transition)) }).
			Times(3)

		v := NewValue(15, hook)
		v.Destroy()

		Expect(items).To(HaveLen(3))
		Expect(items[1].AuxPresent).To(BeTrue())
		Expect(items[2].AuxPresent).To(BeFalse())
	})

	It("should invoke the hook on self copy assignment", func() {
		var poses []*HookPos
		hook.EXPECT().Func(gomock.Any()).
			Do(func(c HookCtx) { poses = append(poses, c.Pos) }).
			Times(2)

		v := NewValue(15, hook)
		v.CopyFrom(v)

		Expect(poses[1]).To(BeIdenticalTo(HookPosCopyAssign))
	})

	It("should panic on registering the same hook twice", func() {
		hook.EXPECT().Func(gomock.Any()).AnyTimes()

		v := NewValue(15, hook)

		Expect(func() { v.AcceptHook(hook) }).To(Panic())
	})
})
