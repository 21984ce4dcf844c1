package constants

// RequestState is the canonical state of an onboarding request.
type RequestState string

// Stable values (store these exact strings in DB).
const (
	StatePendiente               RequestState = "PENDIENTE"                // submitted, awaiting assignment
	StateAsignada                RequestState = "ASIGNADA"                 // reviewer attached
	StateEnRevision              RequestState = "EN_REVISION"              // under review
	StateCorreccionesSolicitadas RequestState = "CORRECCIONES_SOLICITADAS" // sent back to applicant
	StateEnReenvio               RequestState = "EN_REENVIO"               // applicant resubmitted
	StateEnValidacionFinal       RequestState = "EN_VALIDACION_FINAL"      // all children reviewed
	StateEnviadoAutorizacion     RequestState = "ENVIADO_AUTORIZACION"     // awaiting final authorization
	StateAprobado                RequestState = "APROBADO"                 // terminal
	StateRechazado               RequestState = "RECHAZADO"                // terminal
	StateCancelado               RequestState = "CANCELADO"                // terminal, reachable from any non-terminal state
)

// Transitions maps each state to the set of states it may advance to.
// CANCELADO is handled by CanTransition rather than listed everywhere.
var Transitions = map[RequestState][]RequestState{
	StatePendiente:               {StateAsignada},
	StateAsignada:                {StateEnRevision},
	StateEnRevision:              {StateCorreccionesSolicitadas, StateEnValidacionFinal},
	StateCorreccionesSolicitadas: {StateEnReenvio},
	StateEnReenvio:               {StateEnRevision},
	StateEnValidacionFinal:       {StateEnviadoAutorizacion},
	StateEnviadoAutorizacion:     {StateAprobado, StateRechazado},
	StateAprobado:                {},
	StateRechazado:               {},
	StateCancelado:               {},
}

// RequestStates lists every known state.
var RequestStates = []RequestState{
	StatePendiente, StateAsignada, StateEnRevision, StateCorreccionesSolicitadas,
	StateEnReenvio, StateEnValidacionFinal, StateEnviadoAutorizacion,
	StateAprobado, StateRechazado, StateCancelado,
}

// IsTerminal reports whether no further mutation of the request is allowed.
func (s RequestState) IsTerminal() bool {
	return s == StateAprobado || s == StateRechazado || s == StateCancelado
}

// IsEditable reports whether the applicant may still edit the request.
func (s RequestState) IsEditable() bool {
	return s == StatePendiente || s == StateCorreccionesSolicitadas
}

// IsValid reports whether s is a known state value.
func (s RequestState) IsValid() bool {
	_, ok := Transitions[s]
	return ok
}

// CanTransition reports whether from -> to is an allowed walk of the state
// graph. CANCELADO is reachable from any non-terminal state.
func CanTransition(from, to RequestState) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}
	if to == StateCancelado {
		return !from.IsTerminal()
	}
	for _, next := range Transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func RequestStateStrings() []string {
	out := make([]string, 0, len(RequestStates))
	for _, s := range RequestStates {
		out = append(out, string(s))
	}
	return out
}
