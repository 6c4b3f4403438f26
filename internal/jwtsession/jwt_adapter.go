package jwtsession

// ServiceAdapter narrows Service to the middleware's SessionValidator shape:
// token in, session ID out.
type ServiceAdapter struct {
	service *Service
}

func NewServiceAdapter(service *Service) *ServiceAdapter {
	return &ServiceAdapter{service: service}
}

func (a *ServiceAdapter) ValidateToken(tokenString string) (string, error) {
	claims, err := a.service.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	return claims.SessionID, nil
}
