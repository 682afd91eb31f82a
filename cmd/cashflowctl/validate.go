package main

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Stasnislawe/TZ-1ST-IT-COMPANY/recordform"

	"github.com/spf13/cobra"
)

var errInvalidRecord = errors.New("record is invalid")

func newValidateCmd(a *app) *cobra.Command {
	values := map[string]*string{}
	var path string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check record form values the way the form does before submitting",
		RunE: func(cmd *cobra.Command, args []string) error {
			form := url.Values{}
			for key, v := range values {
				if *v != "" {
					form.Set(key, *v)
				}
			}
			return runValidate(cmd, a, form, path, time.Now())
		},
	}

	for _, key := range []string{
		recordform.FieldCreatedDate,
		recordform.FieldStatus,
		recordform.FieldTransactionType,
		recordform.FieldCategory,
		recordform.FieldSubcategory,
		recordform.FieldAmount,
		recordform.FieldComment,
	} {
		values[key] = cmd.Flags().String(strings.ReplaceAll(key, "_", "-"), "", key+" value")
	}
	cmd.Flags().StringVar(&path, "path", "/records/create/", "page path the form is rendered on")
	return cmd
}

func runValidate(cmd *cobra.Command, a *app, form url.Values, path string, now time.Time) error {
	record, err := recordform.Decode(form)
	if err != nil {
		return err
	}

	if recordform.DefaultCreatedDate(&record, recordform.ViewForPath(path), now) {
		a.log.WithField("created_date", record.CreatedDate).Debug("created date defaulted")
	}

	res := recordform.Check(record)
	if !res.OK() {
		fmt.Fprintln(cmd.ErrOrStderr(), res.Notice())
		return errInvalidRecord
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ok: created_date=%s amount=%s\n", record.CreatedDate, res.Amount.String())
	return nil
}
