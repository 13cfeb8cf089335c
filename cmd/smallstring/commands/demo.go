package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haivivi/smallstring/pkg/smallstring"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk the buffer API through a scripted example",
	RunE: func(cmd *cobra.Command, args []string) error {
		buf := smallstring.New()

		step := func(op string) {
			fmt.Printf("%-22s -> %q (len=%d cap=%d)\n", op, buf.Bytes(), buf.Len(), buf.Capacity())
		}

		if err := buf.PushString("1234"); err != nil {
			return err
		}
		step(`push "1234"`)

		if err := buf.PushString("567_8910"); err != nil {
			return err
		}
		step(`push "567_8910"`)

		buf.Pop(4)
		step("pop 4")

		buf.Pop(buf.FindString("_8910", 0))
		step(`pop find("_8910")`)

		if err := buf.PushString("="); err != nil {
			return err
		}
		if err := buf.PushInt(-1254); err != nil {
			return err
		}
		step("push \"=\" then -1254")

		buf.Reset()
		step("reset")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
