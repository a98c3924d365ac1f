package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/hyperledger-labs/yui-header-relayer/config"
	"github.com/hyperledger-labs/yui-header-relayer/core"
	"github.com/spf13/cobra"
)

type clientTypeInfo struct {
	Tag      string `json:"tag"`
	Code     uint64 `json:"code"`
	Fallback bool   `json:"fallback,omitempty"`
}

func clientTypeCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "client-type",
		Aliases: []string{"ct"},
		Short:   "inspect the known light client types",
		RunE:    noCommand,
	}

	cmd.AddCommand(
		clientTypeListCmd(),
		clientTypeParseCmd(),
		clientTypeFromCodeCmd(),
		clientTypeInferCmd(),
	)

	return cmd
}

func printClientType(cmd *cobra.Command, info clientTypeInfo) error {
	asJSON, err := cmd.Flags().GetBool(flagJSON)
	if err != nil {
		return err
	}
	if asJSON {
		bz, err := json.Marshal(info)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(bz))
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", info.Tag, info.Code)
	return nil
}

func clientTypeListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lists every client type in declaration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, ct := range core.AllClientTypes() {
				if err := printClientType(cmd, clientTypeInfo{Tag: ct.Tag(), Code: ct.Code()}); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return jsonFlag(cmd)
}

func clientTypeParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [tag]",
		Short: "Parses a canonical client type tag such as 07-tendermint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := core.ParseClientType(args[0])
			if err != nil {
				return err
			}
			return printClientType(cmd, clientTypeInfo{Tag: ct.Tag(), Code: ct.Code()})
		},
	}
	return jsonFlag(cmd)
}

func clientTypeFromCodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "from-code [code]",
		Short: "Finds the client type with the given numeric code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return &core.UnknownClientTypeError{Value: args[0]}
			}
			ct, err := core.ClientTypeFromCode(code)
			if err != nil {
				return err
			}
			return printClientType(cmd, clientTypeInfo{Tag: ct.Tag(), Code: ct.Code()})
		},
	}
	return jsonFlag(cmd)
}

func clientTypeInferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "infer [client-id]",
		Short: "Guesses the client type of a client identifier such as 07-tendermint-0",
		Long:  "Guesses the client type of a client identifier. The guess never fails and falls back to 9999-mock.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inferred := core.InferClientType(args[0])
			ct := inferred.ClientType()
			return printClientType(cmd, clientTypeInfo{Tag: ct.Tag(), Code: ct.Code(), Fallback: !inferred.Matched()})
		},
	}
	return jsonFlag(cmd)
}
