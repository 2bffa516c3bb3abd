package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sarchlab/lifeline/journal"
	"github.com/spf13/cobra"
)

var reportDB string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the transitions recorded in a journal database",
	Run: func(_ *cobra.Command, _ []string) {
		runReport()
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportDB, "db", "",
		"journal database file, without the .sqlite3 suffix")
	err := reportCmd.MarkFlagRequired("db")
	if err != nil {
		panic(err)
	}
}

func runReport() {
	entries, err := journal.ReadTransitions(context.Background(), reportDB)
	if err != nil {
		panic(err)
	}

	for _, e := range entries {
		aux := "absent"
		if e.AuxPresent {
			aux = strconv.Itoa(e.Auxiliary)
		}

		fmt.Printf("%4d %s %s, value = %d, auxiliary = %s\n",
			e.Seq, e.Object, e.Op, e.Value, aux)
	}
}
