// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"
	"harvest/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// farmerService implements the FarmerUsecase interface.
type farmerService struct {
	txManager  repository.TransactionManager
	farmerRepo repository.FarmerRepository
	hasher     service.PasswordHasher
	tokenSvc   service.TokenService
	logger     *slog.Logger
}

// FarmerServiceParams holds dependencies for farmerService, injected by Fx.
type FarmerServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	FarmerRepo repository.FarmerRepository
	Hasher     service.PasswordHasher
	TokenSvc   service.TokenService
	Logger     *slog.Logger
}

// NewFarmerService is the constructor for farmerService. It receives all dependencies as interfaces.
func NewFarmerService(params FarmerServiceParams) usecase.FarmerUsecase {
	return &farmerService{
		txManager:  params.TxManager,
		farmerRepo: params.FarmerRepo,
		hasher:     params.Hasher,
		tokenSvc:   params.TokenSvc,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *farmerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new farmer account. The plaintext is hashed before the
// transaction; inside it the existence pre-check produces the friendly
// conflict and the unique index catches the race the pre-check cannot.
func (srv *farmerService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.FarmerOutput, error) {
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	farmer := &entity.Farmer{
		Username:     input.Username,
		Name:         input.Name,
		PasswordHash: hashedPassword,
		Gender:       input.Gender,
		Location:     input.Location,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		farmerRepo := repoFactory.FarmerRepo()

		exists, err := farmerRepo.ExistsByUsername(ctx, input.Username)
		if err != nil {
			return errors.Wrap(err, "failed to check username availability")
		}
		if exists {
			return domainerrors.ErrFarmerAlreadyExists.WrapMessage("username already registered")
		}

		if err := farmerRepo.Create(ctx, farmer); err != nil {
			if errors.Is(err, repository.ErrUsernameTaken) {
				// Lost the race to a concurrent registration; the unique
				// index surfaced it, report the same conflict outcome.
				return domainerrors.ErrFarmerAlreadyExists.WrapMessage("username already registered")
			}

			return errors.Wrap(err, "failed to create farmer")
		}

		return nil
	})
	if err != nil {
		if appErr, ok := asAppError(err); ok {
			return nil, appErr
		}
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to register farmer")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("username", farmer.Username), slog.Uint64("farmerID", uint64(farmer.ID)))

	return toFarmerOutput(farmer), nil
}

// Login verifies the credentials and issues a session token. An unknown
// username and a wrong password report different messages, reproducing the
// documented behavior of the API.
func (srv *farmerService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	farmer, err := srv.farmerRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrFarmerNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown user", slog.String("username", input.Username))

			return nil, domainerrors.ErrInvalidUser.WrapMessage("no account for username")
		}
		srv.log(ctx).Error("Failed to load farmer during login", slog.String("username", input.Username), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to look up account")
	}

	if !srv.hasher.Check(input.Password, farmer.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidPassword.WrapMessage("password mismatch")
	}

	token, err := srv.tokenSvc.IssueToken(farmer.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.LoginOutput{Token: token}, nil
}

// ChangePassword hashes the new password and replaces the stored digest.
func (srv *farmerService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during update", slog.String("username", input.Username), slog.Any("error", err))

		return err
	}

	if err := srv.farmerRepo.UpdatePassword(ctx, input.Username, hashedPassword); err != nil {
		if errors.Is(err, repository.ErrFarmerNotFound) {
			return domainerrors.ErrFarmerNotFound.WrapMessage("no account for username")
		}
		srv.log(ctx).Error("Failed to update password", slog.String("username", input.Username), slog.Any("error", err))

		return domainerrors.NewDatabaseExecuteError(err, "failed to update password")
	}

	srv.log(ctx).Debug("Password updated", slog.String("username", input.Username))

	return nil
}

// ListFarmers returns every registered account with the digest stripped.
func (srv *farmerService) ListFarmers(ctx context.Context) ([]*usecase.FarmerOutput, error) {
	farmers, err := srv.farmerRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list farmers", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list farmers")
	}

	outputs := make([]*usecase.FarmerOutput, 0, len(farmers))
	for _, farmer := range farmers {
		outputs = append(outputs, toFarmerOutput(farmer))
	}

	return outputs, nil
}

// GetProfile returns the account behind the given username, digest stripped.
func (srv *farmerService) GetProfile(ctx context.Context, username string) (*usecase.FarmerOutput, error) {
	farmer, err := srv.farmerRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrFarmerNotFound) {
			return nil, domainerrors.ErrFarmerNotFound.WrapMessage("no account for username")
		}
		srv.log(ctx).Error("Failed to load farmer profile", slog.String("username", username), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load profile")
	}

	return toFarmerOutput(farmer), nil
}

// toFarmerOutput projects a Farmer entity onto the boundary shape,
// dropping the password digest.
func toFarmerOutput(farmer *entity.Farmer) *usecase.FarmerOutput {
	return &usecase.FarmerOutput{
		ID:       farmer.ID,
		Username: farmer.Username,
		Name:     farmer.Name,
		Gender:   farmer.Gender,
		Location: farmer.Location,
	}
}

// asAppError unwraps err looking for an application error.
func asAppError(err error) (domainerrors.AppError, bool) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}
