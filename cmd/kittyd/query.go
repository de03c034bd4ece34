package main

import (
	"encoding/json"
	"fmt"
	"io"

	weave "github.com/iov-one/kitties"
	kapp "github.com/iov-one/kitties/cmd/kittyd/app"
	"github.com/iov-one/kitties/x/kitty"
	"github.com/spf13/cobra"
)

// kittyView is the JSON representation of a kitty.
type kittyView struct {
	ID        string         `json:"id"`
	Owner     weave.Address  `json:"owner"`
	Price     string         `json:"price,omitempty"`
	Gender    string         `json:"gender"`
	CreatedAt weave.UnixTime `json:"created_at"`
}

func viewKitty(k *kitty.Kitty) kittyView {
	v := kittyView{
		ID:        fmt.Sprintf("%X", k.ID),
		Owner:     k.Owner,
		Gender:    k.Gender.String(),
		CreatedAt: k.CreatedAt,
	}
	if k.ForSale() {
		v.Price = k.Price.String()
	}
	return v
}

func printJSON(w io.Writer, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Print a kitty as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseKittyID(args[0])
			if err != nil {
				return err
			}
			return c.withNode(func(n *node) error {
				k, err := n.registry.Kitty(n.app.ReadStore(), id)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), viewKitty(k))
			})
		},
	}
}

func (c *cli) ownedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "owned OWNER",
		Short: "Print all kitties of an owner as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			return c.withNode(func(n *node) error {
				kitties, err := n.registry.OwnedBy(n.app.ReadStore(), owner)
				if err != nil {
					return err
				}
				views := make([]kittyView, len(kitties))
				for i, k := range kitties {
					views[i] = viewKitty(k)
				}
				return printJSON(cmd.OutOrStdout(), views)
			})
		},
	}
}

func (c *cli) balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance OWNER",
		Short: "Print the coins held by an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			return c.withNode(func(n *node) error {
				coins, err := kapp.Controller().Balance(n.app.ReadStore(), owner)
				if err != nil {
					return err
				}
				for _, amount := range coins {
					fmt.Fprintln(cmd.OutOrStdout(), amount.String())
				}
				return nil
			})
		},
	}
}

func (c *cli) countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of kitties ever created",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withNode(func(n *node) error {
				count, err := n.registry.Count(n.app.ReadStore())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), count)
				return nil
			})
		},
	}
}

func (c *cli) auditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Verify that the kitty table and the ownership index agree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withNode(func(n *node) error {
				if err := n.registry.CheckInvariants(n.app.ReadStore()); err != nil {
					return err
				}
				height, err := n.app.Height()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok at height %d\n", height)
				return nil
			})
		},
	}
}
