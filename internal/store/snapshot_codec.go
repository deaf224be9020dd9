package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-table-order/models"
)

func encodeSnapshot(snapshot models.Snapshot) ([]byte, error) {
	if snapshot.Tables == nil {
		snapshot.Tables = make([]models.Table, 0)
	}
	if snapshot.Orders == nil {
		snapshot.Orders = make([]models.Order, 0)
	}

	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return append(payload, '\n'), nil
}

func decodeSnapshot(payload []byte) (models.Snapshot, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return models.Snapshot{}, fmt.Errorf("%w: empty document", ErrCorruptSnapshot)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}

	if snapshot.Tables == nil {
		snapshot.Tables = make([]models.Table, 0)
	}
	if snapshot.Orders == nil {
		snapshot.Orders = make([]models.Order, 0)
	}
	return snapshot, nil
}
