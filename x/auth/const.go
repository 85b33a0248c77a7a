package auth

const (
	RequesterIdCtxKey      = "requesterId"
	RequesterClaimsCtxKey  = "jwtclaims"
	RequesterIsAdminCtxKey = "requesterIsAdmin"
)
