package session

import (
	"sync"

	"github.com/jhoicas/tienda-client/internal/domain/entity"
)

// State fase del ciclo de vida de la sesión.
type State int

const (
	// Bootstrapping la hidratación inicial desde el store aún no termina.
	Bootstrapping State = iota
	// Anonymous no hay credencial vigente.
	Anonymous
	// Authenticated hay identidad y credencial.
	Authenticated
)

func (s State) String() string {
	switch s {
	case Bootstrapping:
		return "bootstrapping"
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session el estado de sesión del proceso: identidad + credencial + ventana de bootstrap.
// Existe exactamente una instancia, propiedad del Controller; el resto de componentes
// la ven de solo lectura. Identidad y credencial se fijan y limpian juntas, nunca a medias.
type Session struct {
	mu       sync.RWMutex
	identity *entity.Identity
	token    string
	loading  bool
	ready    chan struct{}
}

// NewSession crea la sesión en fase Bootstrapping.
func NewSession() *Session {
	return &Session{loading: true, ready: make(chan struct{})}
}

// Token credencial vigente ("" si anónimo). Implementa httpapi.TokenSource:
// el decorador de peticiones lee este valor en el momento del dispatch.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Identity copia de la identidad vigente, o nil si anónimo.
func (s *Session) Identity() *entity.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// State fase actual.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.loading {
		return Bootstrapping
	}
	if s.token == "" {
		return Anonymous
	}
	return Authenticated
}

// Ready canal cerrado cuando termina el bootstrap; permite a un guard bloquear
// la navegación hasta que la sesión resuelva a Anonymous o Authenticated.
func (s *Session) Ready() <-chan struct{} {
	return s.ready
}

// set fija el par identidad+credencial de forma atómica (last-write-wins).
func (s *Session) set(identity entity.Identity, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = &identity
	s.token = token
}

// clear borra el par completo.
func (s *Session) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	s.token = ""
}

// finishBootstrap cierra la ventana de loading. Debe llamarse exactamente una vez.
func (s *Session) finishBootstrap() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loading {
		return
	}
	s.loading = false
	close(s.ready)
}
