package invoicing

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
)

func TestValidateForm(t *testing.T) {
	tests := []struct {
		name       string
		form       domain.InvoiceForm
		wantCents  int64
		wantErrors map[string][]string
	}{
		{
			name:      "formulário válido",
			form:      domain.InvoiceForm{CustomerID: "c1", Amount: "50.00", Status: "paid"},
			wantCents: 5000,
		},
		{
			name:      "arredonda meio centavo para cima",
			form:      domain.InvoiceForm{CustomerID: "c1", Amount: "10.005", Status: "pending"},
			wantCents: 1001,
		},
		{
			name:      "aceita espaços em volta do valor",
			form:      domain.InvoiceForm{CustomerID: "c1", Amount: " 12.5 ", Status: "pending"},
			wantCents: 1250,
		},
		{
			name:       "valor zero",
			form:       domain.InvoiceForm{CustomerID: "c1", Amount: "0", Status: "paid"},
			wantErrors: map[string][]string{"amount": {MsgAmountGreaterThanZero}},
		},
		{
			name:       "valor negativo",
			form:       domain.InvoiceForm{CustomerID: "c1", Amount: "-3", Status: "paid"},
			wantErrors: map[string][]string{"amount": {MsgAmountGreaterThanZero}},
		},
		{
			name:       "valor não numérico",
			form:       domain.InvoiceForm{CustomerID: "c1", Amount: "abc", Status: "paid"},
			wantErrors: map[string][]string{"amount": {MsgAmountGreaterThanZero}},
		},
		{
			name:       "valor abaixo de meio centavo",
			form:       domain.InvoiceForm{CustomerID: "c1", Amount: "0.004", Status: "paid"},
			wantErrors: map[string][]string{"amount": {MsgAmountGreaterThanZero}},
		},
		{
			name:       "valor acima do limite",
			form:       domain.InvoiceForm{CustomerID: "c1", Amount: "99999999999", Status: "paid"},
			wantErrors: map[string][]string{"amount": {MsgAmountTooLarge}},
		},
		{
			name:       "expoente enorme",
			form:       domain.InvoiceForm{CustomerID: "c1", Amount: "1e100000000", Status: "paid"},
			wantErrors: map[string][]string{"amount": {MsgAmountTooLarge}},
		},
		{
			name:       "expoente no limite do int32",
			form:       domain.InvoiceForm{CustomerID: "c1", Amount: "1e2000000000", Status: "paid"},
			wantErrors: map[string][]string{"amount": {MsgAmountTooLarge}},
		},
		{
			name:       "expoente negativo enorme",
			form:       domain.InvoiceForm{CustomerID: "c1", Amount: "1e-2000000000", Status: "paid"},
			wantErrors: map[string][]string{"amount": {MsgAmountGreaterThanZero}},
		},
		{
			name:       "status desconhecido",
			form:       domain.InvoiceForm{CustomerID: "c1", Amount: "10", Status: "overdue"},
			wantErrors: map[string][]string{"status": {MsgSelectStatus}},
		},
		{
			name: "formulário vazio",
			form: domain.InvoiceForm{},
			wantErrors: map[string][]string{
				"customerId": {MsgSelectCustomer},
				"amount":     {MsgAmountGreaterThanZero},
				"status":     {MsgSelectStatus},
			},
		},
		{
			name:       "cliente só com espaços",
			form:       domain.InvoiceForm{CustomerID: "   ", Amount: "10", Status: "paid"},
			wantErrors: map[string][]string{"customerId": {MsgSelectCustomer}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cents, state := ValidateForm(tt.form)

			if tt.wantErrors == nil {
				require.Nil(t, state)
				assert.Equal(t, tt.wantCents, cents)
				return
			}

			require.NotNil(t, state)
			assert.Equal(t, tt.wantErrors, state.Errors)
			assert.Zero(t, cents)
		})
	}
}

func TestAmountToCents(t *testing.T) {
	cents, err := AmountToCents("1e2")
	require.NoError(t, err)
	assert.Equal(t, int64(10000), cents)

	cents, err = AmountToCents(".5")
	require.NoError(t, err)
	assert.Equal(t, int64(50), cents)

	_, err = AmountToCents("")
	assert.Error(t, err)

	_, err = AmountToCents("0.00")
	assert.ErrorIs(t, err, errAmountNotPositive)

	cents, err = AmountToCents("0.005")
	require.NoError(t, err)
	assert.Equal(t, int64(1), cents)

	cents, err = AmountToCents("21474836.47")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt32), cents)

	_, err = AmountToCents("21474836.48")
	assert.ErrorIs(t, err, errAmountTooLarge)
}

func TestAmountToCentsHugeExponentIsRejectedQuickly(t *testing.T) {
	for _, raw := range []string{"1e100000000", "1e2000000000", "1e-2000000000", "-1e2000000000"} {
		start := time.Now()
		_, err := AmountToCents(raw)

		assert.Error(t, err, raw)
		assert.Less(t, time.Since(start), 100*time.Millisecond, raw)
	}
}
