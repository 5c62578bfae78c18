// Package oneclicks lists the available DigitalOcean 1-Click applications,
// optionally limited to one type (droplet or kubernetes).
package oneclicks

import (
	"context"
	"errors"
	"fmt"

	"github.com/mamercad/clickops/internal/doapi"
	"github.com/mamercad/clickops/internal/modules"
	"github.com/mamercad/clickops/internal/types"
)

const notFoundMsg = "Current 1-Click applications not found"

func init() {
	modules.Register(InfoModule{})
}

// InfoModule implements the one_clicks_info query. It is read-only and
// idempotent; running it twice against an unchanged catalog yields identical
// results.
type InfoModule struct{}

func (InfoModule) Name() string { return "one_clicks_info" }

// Validate rejects a `type` outside the allowed choices before any network
// call happens.
func (InfoModule) Validate(q types.QueryDefinition) error {
	if q.Type == "" {
		return nil
	}
	_, err := types.ParseClickType(q.Type)
	return err
}

func (m InfoModule) Run(ctx context.Context, catalog modules.Catalog, q types.QueryDefinition) types.ModuleResult {
	res := types.ModuleResult{Changed: false}

	if err := m.Validate(q); err != nil {
		return failResult(res, err.Error(), nil)
	}

	oneClicks, err := catalog.ListOneClicks(ctx)
	if err != nil {
		var respErr *doapi.ResponseError
		if errors.As(err, &respErr) {
			return failResult(res, respErr.Message, &types.ErrorDetail{
				Message:    respErr.Message,
				Reason:     respErr.Reason,
				StatusCode: respErr.StatusCode,
			})
		}
		return failResult(res, err.Error(), &types.ErrorDetail{Message: err.Error()})
	}

	// A wholly empty catalog is a failure; an empty *filtered* list below is
	// still a success.
	if len(oneClicks) == 0 {
		return failResult(res, notFoundMsg, nil)
	}

	if q.Type != "" {
		clickType, _ := types.ParseClickType(q.Type)
		filtered := make([]types.OneClick, 0, len(oneClicks))
		for _, oc := range oneClicks {
			if oc.Type == string(clickType) {
				filtered = append(filtered, oc)
			}
		}
		res.Msg = fmt.Sprintf("Current %s 1-Click applications", clickType.Label())
		res.OneClicks = filtered
		return res
	}

	res.Msg = "Current 1-Click applications"
	res.OneClicks = oneClicks
	return res
}

// failResult marks the result failed with the given message and optional
// error detail.
func failResult(res types.ModuleResult, msg string, detail *types.ErrorDetail) types.ModuleResult {
	res.Failed = true
	res.Msg = msg
	res.Error = detail
	return res
}
