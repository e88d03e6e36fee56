package charge_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billing-portal/internal/domain"
	"github.com/jhoicas/billing-portal/internal/domain/charge"
	"github.com/jhoicas/billing-portal/internal/domain/entity"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(charge.DateLayout, s)
	require.NoError(t, err)
	return d
}

func baseTemplate(t *testing.T) charge.Template {
	return charge.Template{
		CompanyID:  7,
		Title:      "Service Fee",
		Amount:     decimal.NewFromInt(300),
		DueDate:    date(t, "2026-01-01"),
		BoletoFile: "/uploads/base.pdf",
	}
}

func TestGenerate_UnaCobranzaUsaPlantillaTalCual(t *testing.T) {
	tpl := baseTemplate(t)
	charges, err := charge.Generate(tpl, charge.SingleCharge())
	require.NoError(t, err)
	require.Len(t, charges, 1)

	c := charges[0]
	assert.Equal(t, "Service Fee", c.Title)
	assert.Equal(t, tpl.DueDate, c.DueDate)
	assert.Equal(t, "/uploads/base.pdf", c.BoletoFile)
	assert.Equal(t, entity.ChargeStatusPending, c.Status)
	assert.Equal(t, int64(7), c.CompanyID)
	assert.True(t, c.Amount.Equal(decimal.NewFromInt(300)))
}

func TestGenerate_TresCuotasCada30Dias(t *testing.T) {
	charges, err := charge.Generate(baseTemplate(t), charge.Recurrence{Count: 3, IntervalDays: 30})
	require.NoError(t, err)
	require.Len(t, charges, 3)

	wantDates := []string{"2026-01-01", "2026-01-31", "2026-03-02"}
	wantTitles := []string{"Service Fee (1/3)", "Service Fee (2/3)", "Service Fee (3/3)"}
	for i, c := range charges {
		assert.Equal(t, wantDates[i], c.DueDate.Format(charge.DateLayout))
		assert.Equal(t, wantTitles[i], c.Title)
		assert.Equal(t, "/uploads/base.pdf", c.BoletoFile)
	}
}

func TestGenerate_CuotasExplicitasConFallbackDeBoleto(t *testing.T) {
	rec := charge.Recurrence{
		Count:        2,
		IntervalDays: 30,
		Installments: []charge.Installment{
			{DueDate: date(t, "2026-02-10"), BoletoFile: "/uploads/b1.pdf"},
			{DueDate: date(t, "2026-03-15")},
		},
	}
	charges, err := charge.Generate(baseTemplate(t), rec)
	require.NoError(t, err)
	require.Len(t, charges, 2)

	assert.Equal(t, "2026-02-10", charges[0].DueDate.Format(charge.DateLayout))
	assert.Equal(t, "/uploads/b1.pdf", charges[0].BoletoFile)
	assert.Equal(t, "2026-03-15", charges[1].DueDate.Format(charge.DateLayout))
	assert.Equal(t, "/uploads/base.pdf", charges[1].BoletoFile)
}

func TestGenerate_ListaParcialCompletaConIntervalo(t *testing.T) {
	rec := charge.Recurrence{
		Count:        3,
		IntervalDays: 10,
		Installments: []charge.Installment{{DueDate: date(t, "2026-01-05")}},
	}
	charges, err := charge.Generate(baseTemplate(t), rec)
	require.NoError(t, err)
	require.Len(t, charges, 3)
	assert.Equal(t, "2026-01-05", charges[0].DueDate.Format(charge.DateLayout))
	assert.Equal(t, "2026-01-11", charges[1].DueDate.Format(charge.DateLayout))
	assert.Equal(t, "2026-01-21", charges[2].DueDate.Format(charge.DateLayout))
}

func TestGenerate_RechazaParametrosInvalidos(t *testing.T) {
	tests := []struct {
		name  string
		tpl   func(*charge.Template)
		rec   charge.Recurrence
		field string
	}{
		{name: "cantidad cero", rec: charge.Recurrence{Count: 0, IntervalDays: 30}, field: "recurringCount"},
		{name: "cantidad trece", rec: charge.Recurrence{Count: 13, IntervalDays: 30}, field: "recurringCount"},
		{name: "intervalo cero", rec: charge.Recurrence{Count: 2, IntervalDays: 0}, field: "intervalDays"},
		{
			name:  "más cuotas que repeticiones",
			rec:   charge.Recurrence{Count: 1, IntervalDays: 30, Installments: make([]charge.Installment, 2)},
			field: "installments",
		},
		{
			name:  "cuota sin fecha",
			rec:   charge.Recurrence{Count: 2, IntervalDays: 30, Installments: make([]charge.Installment, 1)},
			field: "installments[0].dueDate",
		},
		{name: "sin empresa", tpl: func(t *charge.Template) { t.CompanyID = 0 }, rec: charge.SingleCharge(), field: "companyId"},
		{name: "título vacío", tpl: func(t *charge.Template) { t.Title = "  " }, rec: charge.SingleCharge(), field: "title"},
		{name: "monto cero", tpl: func(t *charge.Template) { t.Amount = decimal.Zero }, rec: charge.SingleCharge(), field: "amount"},
		{name: "monto menor a un centavo", tpl: func(t *charge.Template) { t.Amount = decimal.RequireFromString("0.004") }, rec: charge.SingleCharge(), field: "amount"},
		{name: "monto fuera de rango", tpl: func(t *charge.Template) { t.Amount = decimal.New(1, 8) }, rec: charge.SingleCharge(), field: "amount"},
		{name: "monto que redondea fuera de rango", tpl: func(t *charge.Template) { t.Amount = decimal.RequireFromString("99999999.996") }, rec: charge.SingleCharge(), field: "amount"},
		{name: "estado desconocido", tpl: func(t *charge.Template) { t.Status = "cancelled" }, rec: charge.SingleCharge(), field: "status"},
		{name: "paga sin método", tpl: func(t *charge.Template) { t.Status = entity.ChargeStatusPaid }, rec: charge.SingleCharge(), field: "paymentMethod"},
		{name: "pendiente con pago", tpl: func(t *charge.Template) { t.PaymentMethod = "Pix" }, rec: charge.SingleCharge(), field: "status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl := charge.Template{
				CompanyID: 7,
				Title:     "Service Fee",
				Amount:    decimal.NewFromInt(300),
				DueDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			}
			if tt.tpl != nil {
				tt.tpl(&tpl)
			}
			charges, err := charge.Generate(tpl, tt.rec)
			assert.Nil(t, charges)
			require.ErrorIs(t, err, domain.ErrInvalidInput)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestGenerate_PlantillaPagaConservaDatosDePago(t *testing.T) {
	paid := date(t, "2026-01-05")
	tpl := baseTemplate(t)
	tpl.Status = entity.ChargeStatusPaid
	tpl.PaymentMethod = " Pix "
	tpl.PaymentDate = &paid

	charges, err := charge.Generate(tpl, charge.SingleCharge())
	require.NoError(t, err)
	assert.Equal(t, "Pix", charges[0].PaymentMethod)
	assert.Equal(t, &paid, charges[0].PaymentDate)
}

func TestEffectiveStatus(t *testing.T) {
	today := date(t, "2026-02-01")
	pending := &entity.Charge{Status: entity.ChargeStatusPending, DueDate: date(t, "2026-01-31")}
	dueToday := &entity.Charge{Status: entity.ChargeStatusPending, DueDate: today}
	paidLate := &entity.Charge{Status: entity.ChargeStatusPaid, DueDate: date(t, "2026-01-01")}

	assert.Equal(t, entity.ChargeStatusOverdue, charge.EffectiveStatus(pending, today))
	assert.Equal(t, entity.ChargeStatusPending, charge.EffectiveStatus(dueToday, today))
	assert.Equal(t, entity.ChargeStatusPaid, charge.EffectiveStatus(paidLate, today))
	assert.Equal(t, entity.ChargeStatusPending, pending.Status, "el estado persistido no cambia")
}

func TestToday_UsaZonaDelNegocio(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	// 01:30 UTC del 2 de enero es todavía 1 de enero en São Paulo (UTC-3).
	now := time.Date(2026, 1, 2, 1, 30, 0, 0, time.UTC)
	assert.Equal(t, date(t, "2026-01-01"), charge.Today(now, loc))
	assert.Equal(t, date(t, "2026-01-02"), charge.Today(now, nil))
}

func TestParseDate(t *testing.T) {
	d, err := charge.ParseDate("dueDate", "2026-01-31")
	require.NoError(t, err)
	assert.Equal(t, 31, d.Day())

	_, err = charge.ParseDate("dueDate", "31/01/2026")
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "dueDate", ve.Field)
}

func TestNormalizeAmount(t *testing.T) {
	got, err := charge.NormalizeAmount(decimal.RequireFromString("0.005"))
	require.NoError(t, err)
	assert.Equal(t, "0.01", got.StringFixed(2))

	got, err = charge.NormalizeAmount(decimal.RequireFromString("99999999.99"))
	require.NoError(t, err)
	assert.Equal(t, "99999999.99", got.StringFixed(2))

	_, err = charge.NormalizeAmount(decimal.RequireFromString("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
