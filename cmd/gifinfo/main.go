// Command gifinfo is a demonstration host for the gif package: it opens a
// file, drives a decode, and prints either the header or the per-frame
// timing to stdout. File I/O and argument parsing live entirely here,
// outside the decoder core (spec.md §1's "external collaborators").
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	gif "github.com/gifstream/gif"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gifinfo",
		Short: "Inspect GIF87a/89a files",
	}
	root.AddCommand(newInfoCmd(), newFramesCmd())
	return root
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Print the Logical Screen Descriptor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			features, err := gif.GetFeatures(f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "width=%d height=%d global_color_table=%v\n",
				features.Width, features.Height, features.HasGlobalColorTable)
			return nil
		},
	}
}

func newFramesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frames <file>",
		Short: "Print per-frame delay and size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			decoded, err := gif.DecodeAll(f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, frame := range decoded.Frames {
				delay := "none"
				if frame.Delay != nil {
					delay = fmt.Sprintf("%dcs", *frame.Delay)
				}
				fmt.Fprintf(out, "frame %d: %d bytes, delay=%s\n", i, len(frame.Pix), delay)
			}
			if decoded.LoopCount != nil {
				fmt.Fprintf(out, "loop_count=%d\n", *decoded.LoopCount)
			}
			return nil
		},
	}
}
