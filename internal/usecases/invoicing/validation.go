package invoicing

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
)

var validate = newValidator()

// fieldMessages mapeia o nome do campo no formulário para sua mensagem de erro
var fieldMessages = map[string]string{
	"customerId": MsgSelectCustomer,
	"amount":     MsgAmountGreaterThanZero,
	"status":     MsgSelectStatus,
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Os erros usam o nome do campo como chegou no formulário
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ValidateForm valida a submissão e devolve o valor em centavos.
// O estado retornado é nil quando o formulário é válido.
func ValidateForm(form domain.InvoiceForm) (int64, *domain.ValidationState) {
	form = normalizeForm(form)
	state := &domain.ValidationState{}

	if err := validate.Struct(form); err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			state.AddError("amount", MsgAmountGreaterThanZero)
			return 0, state
		}

		for _, fieldErr := range fieldErrors {
			addOnce(state, fieldErr.Field())
		}
	}

	cents, err := AmountToCents(form.Amount)
	if err != nil && len(state.Errors["amount"]) == 0 {
		message := MsgAmountGreaterThanZero
		if errors.Is(err, errAmountTooLarge) {
			message = MsgAmountTooLarge
		}
		state.AddError("amount", message)
	}

	if state.HasErrors() {
		return 0, state
	}

	return cents, nil
}

// maxIntegerDigits cobre math.MaxInt32 centavos com folga
const maxIntegerDigits = 10

var (
	errAmountNotPositive = errors.New("amount must be greater than zero")
	errAmountTooLarge    = errors.New("amount exceeds the storable range")
)

// AmountToCents converte o valor decimal informado para centavos, arredondando
// a meia unidade para cima. Valores que resultam em zero centavos são inválidos.
func AmountToCents(raw string) (int64, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}

	if !amount.IsPositive() {
		return 0, errAmountNotPositive
	}

	// O expoente chega do texto sem limite; a magnitude é checada antes de qualquer reescala
	integerDigits := int64(len(amount.Coefficient().String())) + int64(amount.Exponent())
	if integerDigits > maxIntegerDigits {
		return 0, errAmountTooLarge
	}
	if integerDigits < -2 {
		return 0, errAmountNotPositive
	}

	cents := amount.Shift(2).Round(0)
	if !cents.IsPositive() {
		return 0, errAmountNotPositive
	}

	if cents.GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
		return 0, errAmountTooLarge
	}

	return cents.IntPart(), nil
}

func normalizeForm(form domain.InvoiceForm) domain.InvoiceForm {
	return domain.InvoiceForm{
		CustomerID: strings.TrimSpace(form.CustomerID),
		Amount:     strings.TrimSpace(form.Amount),
		Status:     strings.TrimSpace(form.Status),
	}
}

func addOnce(state *domain.ValidationState, field string) {
	message, ok := fieldMessages[field]
	if !ok || len(state.Errors[field]) > 0 {
		return
	}
	state.AddError(field, message)
}
