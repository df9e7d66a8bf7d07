package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	accountServices "github.com/c14220110/caregiver-backend/internal/account/services"
	rosterServices "github.com/c14220110/caregiver-backend/internal/roster/services"
	seedServices "github.com/c14220110/caregiver-backend/internal/seed/services"
)

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Menulis data demo (pasien John, caregiver Alice) ke store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SetContext(contextOf(cmd))
			_, log, store, closer, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer closer.Close()

			svc := seedServices.NewSeedService(store, accountServices.NewAccountService(store), rosterServices.NewRosterService(store, nil), log)
			if reset, _ := cmd.Flags().GetBool("reset"); reset {
				if err := svc.Reset(cmd.Context()); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "data demo dihapus")
				return err
			}
			res, err := svc.Seed(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
	cmd.Flags().Bool("reset", false, "hapus data demo alih-alih menulisnya")
	return cmd
}
