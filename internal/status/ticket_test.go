package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTicket(t *testing.T) {
	estados := []string{
		TicketRecibido, TicketEnDiagnostico, TicketEsperandoAprobacion,
		TicketReparando, TicketCompletado, TicketEntregado,
	}
	for _, e := range estados {
		d := ClassifyTicket(e)
		assert.NotEqual(t, displayUnknown, d, "estado %s", e)
	}

	// El mismo contrato de fallback que las órdenes
	assert.Equal(t, displayUnknown, ClassifyTicket("diagnostico"))
	assert.Equal(t, displayUnknown, ClassifyTicket(""))
}

func TestValidateTicketTransition(t *testing.T) {
	cases := []struct {
		current, next string
		wantErr       error
	}{
		{TicketRecibido, TicketEnDiagnostico, nil},
		{TicketEnDiagnostico, TicketEsperandoAprobacion, nil},
		// El taller puede volver atrás si hace falta un presupuesto nuevo
		{TicketReparando, TicketEsperandoAprobacion, nil},
		{TicketCompletado, TicketEnDiagnostico, nil},
		{TicketCompletado, TicketEntregado, nil},
		// Entregado solo desde completado, y es terminal
		{TicketReparando, TicketEntregado, ErrInvalidTransition},
		{TicketRecibido, TicketEntregado, ErrInvalidTransition},
		{TicketEntregado, TicketRecibido, ErrFinalState},
		{TicketEntregado, TicketCompletado, ErrFinalState},
		{TicketRecibido, "roto", ErrInvalidTransition},
	}

	for _, tc := range cases {
		err := ValidateTicketTransition(tc.current, tc.next)
		if tc.wantErr == nil {
			assert.NoError(t, err, "%s -> %s", tc.current, tc.next)
		} else {
			assert.ErrorIs(t, err, tc.wantErr, "%s -> %s", tc.current, tc.next)
		}
	}
}
