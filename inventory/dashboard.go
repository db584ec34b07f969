package inventory

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/jrsteele09/go-sim-client/endpoints"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Dashboard is the store overview. A panel with no data is [].
type Dashboard struct {
	Tasks       json.RawMessage `json:"task"`
	Discrepancy json.RawMessage `json:"discrepancy"`
	Variance    json.RawMessage `json:"variance"`
	Transfers   json.RawMessage `json:"transfer"`
}

var emptyPanel = json.RawMessage(`[]`)

// Dashboard fetches the four dashboard panels concurrently. If any fetch fails
// the whole call fails and no partial dashboard is returned.
func (s *Service) Dashboard(ctx context.Context, store string) (*Dashboard, error) {
	if err := requireArg("store", store); err != nil {
		return nil, err
	}

	var d Dashboard
	g, gctx := errgroup.WithContext(ctx)
	panels := []struct {
		key endpoints.Key
		dst *json.RawMessage
	}{
		{endpoints.FetchMyTasks, &d.Tasks},
		{endpoints.FetchDiscrepancyTypeRatio, &d.Discrepancy},
		{endpoints.FetchVariance, &d.Variance},
		{endpoints.FetchTransfersStatus, &d.Transfers},
	}
	for _, p := range panels {
		g.Go(func() error {
			raw, err := s.get(gctx, p.key, store)
			if err != nil {
				return errors.Wrapf(err, "dashboard %s", p.key)
			}
			if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
				raw = emptyPanel
			}
			*p.dst = raw
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}
