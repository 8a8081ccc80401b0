package sale

import (
	"testing"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/sale"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestApplyUpdate_DispositionRederivesStatus(t *testing.T) {
	current := sale.Sale{Disposition: "DNC", Status: sale.StatusUnsuccessful}

	updated := applyUpdate(current, sale.UpdateSaleRequest{Disposition: strPtr("HW- Xfer")})

	assert.Equal(t, "HW- Xfer", updated.Disposition)
	assert.Equal(t, sale.StatusSale, updated.Status)
}

func TestApplyUpdate_OtherFieldsKeepStatus(t *testing.T) {
	current := sale.Sale{Disposition: "HW-IBXfer", Status: sale.StatusSale}

	updated := applyUpdate(current, sale.UpdateSaleRequest{
		Grading:   strPtr("A"),
		Evaluator: strPtr("QA Lead"),
		Comments:  strPtr("clean call"),
	})

	assert.Equal(t, sale.StatusSale, updated.Status)
	assert.Equal(t, "A", updated.Grading)
	assert.Equal(t, "QA Lead", updated.Evaluator)
	assert.Equal(t, "clean call", updated.Comments)
}

func TestDockChangeDetection(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		incoming *string
		want     bool
	}{
		{"new dock note", "", strPtr("late transfer"), true},
		{"changed dock note", "old note", strPtr("new note"), true},
		{"unchanged dock note", "same", strPtr("same"), false},
		{"cleared dock note", "old note", strPtr(""), false},
		{"field absent", "old note", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := sale.Sale{DockDetails: tt.current}
			updated := applyUpdate(current, sale.UpdateSaleRequest{DockDetails: tt.incoming})

			dockChanged := updated.DockDetails != current.DockDetails && updated.DockDetails != ""
			assert.Equal(t, tt.want, dockChanged)
		})
	}
}
