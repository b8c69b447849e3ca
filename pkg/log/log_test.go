package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useNullLogger(t *testing.T) *test.Hook {
	t.Helper()

	base, hook := test.NewNullLogger()
	L = newLogger(base)
	t.Cleanup(func() { L = newLogger(logrus.StandardLogger()) })

	return hook
}

func TestForContextCarriesRequestScope(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	hook := useNullLogger(t)

	ctx, req := StartRequest(context.Background())
	require.NotEmpty(t, req.CorrelationID)
	require.Same(t, req, RequestFrom(ctx))

	ForContext(ctx).Info("antes da sessão")
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, req.CorrelationID, entry.Data[correlationIDField])
	assert.NotContains(t, entry.Data, userIDField)

	req.UserID = "u1"
	ForContext(ctx).WithField("invoice_id", "inv-1").Info("fatura criada")

	entry = hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, req.CorrelationID, entry.Data[correlationIDField])
	assert.Equal(t, "u1", entry.Data[userIDField])
	assert.Equal(t, "inv-1", entry.Data["invoice_id"])
}

func TestDevelopmentFiltersFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	base, hook := test.NewNullLogger()
	l := newLogger(base)

	l.WithFields(Fields{
		"invoice_id": "abc",
		"view":       "/dashboard/invoices",
		"remote":     "10.0.0.1",
	}).Info("ok")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "abc", entry.Data["invoice_id"])
	assert.Equal(t, "/dashboard/invoices", entry.Data["view"])
	assert.NotContains(t, entry.Data, "remote")
}

func TestForContextOutsideRequest(t *testing.T) {
	assert.Nil(t, RequestFrom(context.Background()))
	assert.Equal(t, L, ForContext(context.Background()))
}
