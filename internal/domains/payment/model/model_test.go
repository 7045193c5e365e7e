package model_test

import (
	"phoenix/internal/domains/payment/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusBadge(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   string
	}{
		{name: "pending", status: model.StatusPending, want: "warning"},
		{name: "completed", status: model.StatusCompleted, want: "success"},
		{name: "failed", status: model.StatusFailed, want: "danger"},
		{name: "refunded", status: model.StatusRefunded, want: "info"},
		{name: "unknown status", status: "chargeback", want: "default"},
		{name: "empty status", status: "", want: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.StatusBadge(tt.status))
		})
	}
}
