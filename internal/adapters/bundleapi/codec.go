package bundleapi

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/bundle-deploy-cli/internal/domain"
)

// bundleRepresentation is one element of the representations listing.
type bundleRepresentation struct {
	ID           int64  `json:"id"`
	SymbolicName string `json:"symbolicName"`
	Version      string `json:"version"`
	Location     string `json:"location"`
	State        int    `json:"state"`
}

func decodeRepresentations(data []byte) ([]domain.BundleRecord, error) {
	var payload []bundleRepresentation
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}

	records := make([]domain.BundleRecord, 0, len(payload))
	for _, item := range payload {
		records = append(records, domain.BundleRecord{
			ID:           domain.BundleID(item.ID),
			SymbolicName: item.SymbolicName,
			Version:      item.Version,
			Location:     item.Location,
			State:        domain.BundleState(item.State),
		})
	}
	return records, nil
}

func encodeStatus(req domain.BundleStatusRequest) ([]byte, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal status request: %w", err)
	}
	return data, nil
}
