package main

import (
	"os"
	"strconv"

	inet "github.com/sagernet/sing-inet"
	"github.com/sagernet/sing-inet/common/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logger = log.NewLogger("addr-chk")

type Flags struct {
	Quiet bool
}

func main() {
	flags := new(Flags)

	command := &cobra.Command{
		Use:     "addr-chk [address]...",
		Short:   "parse addresses and report their canonical form",
		Version: inet.Version,
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			run(flags, args)
		},
	}
	command.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Validate only, report nothing for well-formed addresses.")

	if err := command.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func run(flags *Flags, args []string) {
	failed := false
	for _, arg := range args {
		address, err := inet.ParseAddress(arg)
		if err != nil {
			failed = true
			logger.Error(err)
			continue
		}
		if flags.Quiet {
			continue
		}
		components := make([]uint16, address.ComponentCount())
		for i := range components {
			components[i], _ = address.Component(i)
		}
		logger.Info(arg, " -> ", address.String(), " (", address.Family(), ") ", components)
		if value, err := address.Uint32(); err == nil {
			logger.Info(arg, " -> 0x", strconv.FormatUint(uint64(value), 16))
		}
	}
	if failed {
		os.Exit(1)
	}
}
