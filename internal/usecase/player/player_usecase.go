package player

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/ksoltys/teagarden/internal/domain"
	"github.com/ksoltys/teagarden/internal/infrastructure/auth"
	"github.com/ksoltys/teagarden/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// PlayerUseCase implements domain.PlayerUseCase
type PlayerUseCase struct {
	playerRepo domain.PlayerRepository
	rewardRepo domain.RewardEntryRepository
	jwtSvc     auth.JWTService
	logger     *logger.Logger
}

// NewPlayerUseCase creates a new player use case
func NewPlayerUseCase(
	playerRepo domain.PlayerRepository,
	rewardRepo domain.RewardEntryRepository,
	jwtSvc auth.JWTService,
	logger *logger.Logger,
) domain.PlayerUseCase {
	return &PlayerUseCase{
		playerRepo: playerRepo,
		rewardRepo: rewardRepo,
		jwtSvc:     jwtSvc,
		logger:     logger,
	}
}

// Authenticate validates player credentials and returns a JWT token
func (uc *PlayerUseCase) Authenticate(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid credentials", 401, nil)
	}

	player, err := uc.playerRepo.GetByUsername(username)
	if err != nil {
		uc.logger.Error("Failed to get player during authentication",
			zap.String("username", username), zap.Error(err))
		return "", domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
	}
	if player == nil || !uc.verifyPassword(password, player.Password) {
		uc.logger.Warn("Authentication failed", zap.String("username", username))
		return "", domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid credentials", 401, nil)
	}

	token, err := uc.jwtSvc.GenerateToken(strconv.FormatInt(player.ID, 10), player.Username)
	if err != nil {
		return "", domain.NewAppError(domain.ErrCodeTokenInvalid, "Token generation failed", 500, err)
	}

	uc.logger.Info("Player authenticated",
		zap.Int64("player_id", player.ID), zap.String("username", username))
	return token, nil
}

// Current resolves the acting player. With no authenticated identity the
// legacy behavior applies: the first stored player is the current one.
func (uc *PlayerUseCase) Current(authedID int64) (*domain.Player, error) {
	var (
		player *domain.Player
		err    error
	)

	if authedID > 0 {
		player, err = uc.playerRepo.GetByID(authedID)
	} else {
		player, err = uc.playerRepo.GetFirst()
	}
	if err != nil {
		uc.logger.Error("Failed to resolve current player", zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
	}
	if player == nil {
		return nil, domain.NewAppError(domain.ErrCodePlayerNotFound, "No player found", 404, nil)
	}
	return player, nil
}

// GetByID retrieves a player by ID
func (uc *PlayerUseCase) GetByID(id int64) (*domain.Player, error) {
	player, err := uc.playerRepo.GetByID(id)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
	}
	if player == nil {
		return nil, domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", 404, nil)
	}
	return player, nil
}

// List retrieves all players
func (uc *PlayerUseCase) List() ([]*domain.Player, error) {
	players, err := uc.playerRepo.List()
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to list players", 500, err)
	}
	return players, nil
}

// Create creates a new player profile
func (uc *PlayerUseCase) Create(player *domain.Player) (*domain.Player, error) {
	if player.Username == "" {
		return nil, domain.NewAppError(domain.ErrCodeRequiredField, "Username is required", 400, nil)
	}

	existing, err := uc.playerRepo.GetByUsername(player.Username)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to check username", 500, err)
	}
	if existing != nil {
		return nil, domain.NewAppError("USERNAME_TAKEN", "Username already exists", 409, nil)
	}

	if player.Level < 1 {
		player.Level = 1
	}
	if player.Password != "" {
		player.Password = hashPassword(player.Password)
	}

	if err := uc.playerRepo.Create(player); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create player", 500, err)
	}

	uc.logger.Info("Player created",
		zap.Int64("player_id", player.ID), zap.String("username", player.Username))
	return player, nil
}

// Update updates an existing player profile
func (uc *PlayerUseCase) Update(player *domain.Player) (*domain.Player, error) {
	existing, err := uc.playerRepo.GetByID(player.ID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
	}
	if existing == nil {
		return nil, domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", 404, nil)
	}

	// Credentials are managed through dedicated flows, not profile updates.
	player.Password = existing.Password
	player.CreatedAt = existing.CreatedAt

	if err := uc.playerRepo.Update(player); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update player", 500, err)
	}
	return player, nil
}

// Delete removes a player profile
func (uc *PlayerUseCase) Delete(id int64) error {
	existing, err := uc.playerRepo.GetByID(id)
	if err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
	}
	if existing == nil {
		return domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", 404, nil)
	}

	if err := uc.playerRepo.Delete(id); err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to delete player", 500, err)
	}

	uc.logger.Info("Player deleted", zap.Int64("player_id", id))
	return nil
}

// ListRewards retrieves a player's reward ledger, newest first
func (uc *PlayerUseCase) ListRewards(playerID int64) ([]*domain.RewardEntry, error) {
	player, err := uc.playerRepo.GetByID(playerID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
	}
	if player == nil {
		return nil, domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", 404, nil)
	}

	entries, err := uc.rewardRepo.ListByPlayer(playerID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to list reward entries", 500, err)
	}
	return entries, nil
}

// verifyPassword checks if the provided password matches the stored hash
func (uc *PlayerUseCase) verifyPassword(password, hashedPassword string) bool {
	if password == "" || hashedPassword == "" {
		return false
	}
	return hashPassword(password) == hashedPassword
}

func hashPassword(password string) string {
	hash := sha256.Sum256([]byte(password))
	return hex.EncodeToString(hash[:])
}
