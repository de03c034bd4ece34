package main

import (
	"fmt"

	"github.com/iov-one/kitties/coin"
	"github.com/iov-one/kitties/x/cash"
	"github.com/iov-one/kitties/x/kitty"
	"github.com/spf13/cobra"
)

func (c *cli) mintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mint",
		Short: "Create a new kitty owned by the caller",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := c.caller(cmd.Flags())
			if err != nil {
				return err
			}
			return c.withNode(func(n *node) error {
				res, err := n.deliver(caller, &kitty.CreateKittyMsg{})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%X\n", res.Data)
				return nil
			})
		},
	}
}

func (c *cli) priceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "price ID [AMOUNT]",
		Short: "List a kitty for sale, or remove it from sale when no amount is given",
		Example: `  kittyd price 5CF0479A381380026A05C1E7BC18BFBB "50 MONY" --as alice
  kittyd price 5CF0479A381380026A05C1E7BC18BFBB --as alice`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := c.caller(cmd.Flags())
			if err != nil {
				return err
			}
			id, err := parseKittyID(args[0])
			if err != nil {
				return err
			}
			msg := &kitty.SetPriceMsg{KittyID: id}
			if len(args) == 2 {
				price, err := coin.ParseHumanFormat(args[1])
				if err != nil {
					return err
				}
				msg.Price = &price
			}
			return c.withNode(func(n *node) error {
				_, err := n.deliver(caller, msg)
				return err
			})
		},
	}
}

func (c *cli) transferCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer ID RECIPIENT",
		Short: "Give a kitty to another owner",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := c.caller(cmd.Flags())
			if err != nil {
				return err
			}
			id, err := parseKittyID(args[0])
			if err != nil {
				return err
			}
			to, err := parseAddress(args[1])
			if err != nil {
				return err
			}
			return c.withNode(func(n *node) error {
				_, err := n.deliver(caller, &kitty.TransferKittyMsg{KittyID: id, Recipient: to})
				return err
			})
		},
	}
}

func (c *cli) buyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy ID",
		Short: "Buy a kitty for its listed price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := c.caller(cmd.Flags())
			if err != nil {
				return err
			}
			id, err := parseKittyID(args[0])
			if err != nil {
				return err
			}
			return c.withNode(func(n *node) error {
				_, err := n.deliver(caller, &kitty.BuyKittyMsg{KittyID: id})
				return err
			})
		},
	}
}

func (c *cli) sendCmd() *cobra.Command {
	var memo string
	cmd := &cobra.Command{
		Use:   "send RECIPIENT AMOUNT",
		Short: "Send coins to another account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := c.caller(cmd.Flags())
			if err != nil {
				return err
			}
			to, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			amount, err := coin.ParseHumanFormat(args[1])
			if err != nil {
				return err
			}
			msg := &cash.SendMsg{
				Src:    caller.Address(),
				Dest:   to,
				Amount: &amount,
				Memo:   memo,
			}
			return c.withNode(func(n *node) error {
				_, err := n.deliver(caller, msg)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&memo, "memo", "", "note attached to the payment")
	return cmd
}
