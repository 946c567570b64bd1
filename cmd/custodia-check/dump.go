package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/jjquek/custodia/journal"
)

var fromFlag = cli.Uint64Flag{
	Name:  "from",
	Usage: "first sequence number to print",
}

var Dump = cli.Command{
	Action:    dump,
	Name:      "dump",
	Usage:     "prints the journal records in order",
	ArgsUsage: "<journal>",
	Flags: []cli.Flag{
		&backendFlag,
		&fromFlag,
	},
}

func dump(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing journal location")
	}
	store, err := journal.Open(journal.Config{
		Backend: journal.Backend(context.String(backendFlag.Name)),
		Path:    context.Args().Get(0),
	})
	if err != nil {
		return err
	}

	err = store.Visit(context.Uint64(fromFlag.Name), func(r journal.Record) error {
		stamp := time.Unix(int64(r.Unix), 0).UTC().Format(time.RFC3339)
		switch r.Kind {
		case journal.KindDepositorEnrolled:
			fmt.Printf("%8d %s %-18s %s\n", r.Seq, stamp, r.Kind, r.Account)
		case journal.KindValueDeposited, journal.KindValueWithdrawn:
			fmt.Printf("%8d %s %-18s %s value=%s\n", r.Seq, stamp, r.Kind, r.Account, r.AmountA)
		case journal.KindTokenDeposited, journal.KindTokenWithdrawn:
			fmt.Printf("%8d %s %-18s %s token=%s value=%s\n",
				r.Seq, stamp, r.Kind, r.Account, r.TokenA, r.AmountA)
		case journal.KindTokensSwapped:
			fmt.Printf("%8d %s %-18s %s in=%s/%s out=%s/%s\n",
				r.Seq, stamp, r.Kind, r.Account, r.TokenA, r.AmountA, r.TokenB, r.AmountB)
		case journal.KindValueStaked:
			fmt.Printf("%8d %s %-18s %s value=%s claim=%s/%s\n",
				r.Seq, stamp, r.Kind, r.Account, r.AmountA, r.TokenA, r.AmountB)
		default:
			fmt.Printf("%8d %s kind=%d\n", r.Seq, stamp, r.Kind)
		}
		return nil
	})
	return errors.Join(err, store.Close())
}
