package entity

import "context"

// Identity claim verificado de un Bearer token; vive lo que dura la petición.
// El UserID no se vuelve a comprobar contra el almacén de usuarios.
type Identity struct {
	UserID string
}

type identityKey struct{}

// WithIdentity devuelve un contexto que transporta la identidad.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom devuelve la identidad del contexto y si existe.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	if ctx == nil {
		return Identity{}, false
	}
	id, ok := ctx.Value(identityKey{}).(Identity)
	if !ok || id.UserID == "" {
		return Identity{}, false
	}
	return id, true
}
