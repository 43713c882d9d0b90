package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"innsync/infras/jwt"
	"innsync/infras/otel"
	"innsync/internal/domains/auth/model/dto"
	"innsync/internal/domains/auth/repository"
	"innsync/internal/session"
	"innsync/shared/constant"
	"innsync/shared/failure"
	"innsync/shared/validator"
	"innsync/transport/rest"
)

// Auth owns the session lifecycle. Successful sign-ins store the access token
// in the session store, which feeds the gateway's Authorization header; logout
// clears the token and the per-user local mirrors.
type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.SessionResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.SessionResponse, error)
	GoogleAuth(ctx context.Context, req dto.GoogleAuthRequest) (dto.SessionResponse, error)
	ValidateSession(ctx context.Context) (dto.ValidateTokenResponse, error)
	Logout(ctx context.Context) error
}

type serviceImpl struct {
	repo      repository.Auth
	gateway   rest.Gateway
	sessions  *session.Store
	inspector jwt.Inspector
	otel      otel.Otel
}

func New(repo repository.Auth, gateway rest.Gateway, sessions *session.Store, inspector jwt.Inspector, otel otel.Otel) Auth {
	return &serviceImpl{
		repo:      repo,
		gateway:   gateway,
		sessions:  sessions,
		inspector: inspector,
		otel:      otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err // nolint:wrapcheck
	}

	return s.establishSession(ctx, func(ctx context.Context) (dto.SessionResponse, error) {
		return s.gateway.Register(ctx, req)
	})
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err // nolint:wrapcheck
	}

	return s.establishSession(ctx, func(ctx context.Context) (dto.SessionResponse, error) {
		return s.gateway.Login(ctx, req)
	})
}

func (s *serviceImpl) GoogleAuth(ctx context.Context, req dto.GoogleAuthRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.GoogleAuth")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err // nolint:wrapcheck
	}

	return s.establishSession(ctx, func(ctx context.Context) (dto.SessionResponse, error) {
		return s.gateway.GoogleAuth(ctx, req)
	})
}

// establishSession runs one sign-in call. A server rejection (wrong
// credentials, taken email) becomes a status-false response rather than an
// error; transport failures stay errors.
func (s *serviceImpl) establishSession(ctx context.Context, signIn func(context.Context) (dto.SessionResponse, error)) (dto.SessionResponse, error) {
	res, err := signIn(ctx)
	if err != nil {
		if failure.IsKind(err, failure.KindRemoteRejected) {
			return dto.SessionResponse{Status: false, Message: err.Error()}, nil
		}

		log.Error().Err(err).Msg("sign-in request failed")

		return res, err
	}

	if res.Status && res.AccessToken != constant.Empty {
		var email, name string
		if res.User != nil {
			email, name = res.User.Email, res.User.Name
		}

		s.sessions.Set(res.AccessToken, email, name)
	}

	return res, nil
}

// ValidateSession checks the stored token, reading its expiry locally first
// so an obviously stale token never triggers a network call.
func (s *serviceImpl) ValidateSession(ctx context.Context) (res dto.ValidateTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.ValidateSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	token := s.sessions.Token()
	if token == constant.Empty {
		return res, nil
	}

	if s.inspector.Expired(token) {
		log.Info().Msg("stored session token is expired, clearing session")
		s.sessions.Clear()

		return res, nil
	}

	res, err = s.gateway.ValidateToken(ctx, token)
	if err != nil {
		if failure.IsKind(err, failure.KindRemoteRejected) {
			s.sessions.Clear()

			return dto.ValidateTokenResponse{Status: false}, nil
		}

		log.Error().Err(err).Msg("failed to validate session token")

		return res, err
	}

	if !res.Status {
		s.sessions.Clear()
	}

	return res, nil
}

// Logout clears the per-user local mirrors and drops the session token. The
// mirrors go first: a failed wipe keeps the session so the user can retry.
func (s *serviceImpl) Logout(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.ClearLocalData(ctx); err != nil {
		log.Error().Err(err).Msg("failed to clear local data on logout")

		return err
	}

	s.sessions.Clear()

	return nil
}
