package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/quickwritereader/filovec/config"
	"github.com/quickwritereader/filovec/vector"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func newDecodeCmd(cfg *config.Config) *cobra.Command {
	decodeCmd := &cobra.Command{
		Use:   "decode HEX",
		Short: "Read the DataInfo at a position of a hex buffer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			pos, _ := cmd.Flags().GetInt("pos")

			v, err := vector.GetDataInfo(buf, pos).Unpack()
			if err != nil {
				klog.V(1).InfoS("read failed", "pos", pos, "len", len(buf), "err", err)
				return err
			}
			if err := v.Validate(); err != nil {
				klog.V(1).InfoS("unusual bit width", "nbits", v.NBits)
			}
			return writeValue(cmd.OutOrStdout(), cfg.Output.Format, v)
		},
	}

	decodeCmd.Flags().IntP("pos", "p", 0, "byte position of the record")
	return decodeCmd
}
