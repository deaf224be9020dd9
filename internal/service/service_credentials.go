package service

import (
	"cmp"
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-table-order/internal/config"
	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/internal/metrics"
	"github.com/MKhiriev/go-table-order/internal/store"
	"github.com/MKhiriev/go-table-order/internal/utils"
	"github.com/MKhiriev/go-table-order/models"
)

// errUnchanged aborts an Update whose function found nothing to persist.
var errUnchanged = errors.New("snapshot unchanged")

// generatedPasswordBytes is the entropy of a generated admin password.
const generatedPasswordBytes = 12

// credentialService verifies admin passwords and table PINs against the
// bcrypt hashes held in the snapshot.
type credentialService struct {
	store store.StateStore

	adminUsername string
	adminPassword string
	bcryptCost    int

	logger *logger.Logger
}

// NewCredentialService constructs a CredentialService over the state store.
func NewCredentialService(stateStore store.StateStore, cfg config.App, logger *logger.Logger) CredentialService {
	return &credentialService{
		store:         stateStore,
		adminUsername: cfg.AdminUsername,
		adminPassword: cfg.AdminPassword,
		bcryptCost:    cfg.BcryptCost,
		logger:        logger,
	}
}

// Provision brings the snapshot into its hashed form:
//   - creates the admin account when missing;
//   - hashes an admin password that is not a bcrypt hash yet;
//   - hashes and erases every pinPlain.
//
// Nothing is written when the snapshot is already provisioned.
func (s *credentialService) Provision(ctx context.Context) error {
	var generatedPassword string

	_, err := s.store.Update(ctx, func(snap *models.Snapshot) error {
		changed := false

		if snap.Admin == nil || snap.Admin.Username == "" {
			password := s.adminPassword
			if password == "" {
				p, err := utils.RandomString(generatedPasswordBytes)
				if err != nil {
					return err
				}
				password, generatedPassword = p, p
			}
			hash, err := utils.HashSecret(password, s.bcryptCost)
			if err != nil {
				return err
			}
			snap.Admin = &models.AdminAccount{Username: s.adminUsername, PasswordHash: hash}
			changed = true
		} else if snap.Admin.PasswordHash == "" || !utils.IsSecretHash(snap.Admin.PasswordHash) {
			// a hand-edited document may carry the password in clear
			plain := snap.Admin.PasswordHash
			if plain == "" {
				plain = s.adminPassword
			}
			if plain == "" {
				p, err := utils.RandomString(generatedPasswordBytes)
				if err != nil {
					return err
				}
				plain, generatedPassword = p, p
			}
			hash, err := utils.HashSecret(plain, s.bcryptCost)
			if err != nil {
				return err
			}
			snap.Admin.PasswordHash = hash
			changed = true
		}

		for i := range snap.Tables {
			table := &snap.Tables[i]
			switch {
			case table.PinPlain != "":
				hash, err := utils.HashSecret(table.PinPlain, s.bcryptCost)
				if err != nil {
					return err
				}
				table.PinHash = hash
				table.PinPlain = ""
				changed = true
			case table.PinHash != "" && !utils.IsSecretHash(table.PinHash):
				hash, err := utils.HashSecret(table.PinHash, s.bcryptCost)
				if err != nil {
					return err
				}
				table.PinHash = hash
				changed = true
			}
		}

		if !changed {
			return errUnchanged
		}
		return nil
	})
	if err != nil && !errors.Is(err, errUnchanged) {
		s.logger.Err(err).Str("func", "*credentialService.Provision").Msg("error provisioning credentials")
		return fmt.Errorf("error provisioning credentials: %w", err)
	}

	if generatedPassword != "" {
		s.logger.Warn().
			Str("username", s.adminUsername).
			Str("password", generatedPassword).
			Msg("generated admin password; it is shown only once")
	}

	return nil
}

func (s *credentialService) VerifyAdmin(ctx context.Context, username, password string) error {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return fmt.Errorf("error reading credentials: %w", err)
	}

	var hash string
	if snap.Admin != nil && subtle.ConstantTimeCompare([]byte(snap.Admin.Username), []byte(username)) == 1 {
		hash = snap.Admin.PasswordHash
	}

	ok := utils.CheckSecret(hash, password)
	metrics.RecordAuthAttempt("login", ok)
	if !ok {
		logger.FromContext(ctx).Info().Str("username", username).Msg("admin login rejected")
		return ErrInvalidCredentials
	}

	return nil
}

func (s *credentialService) VerifyTablePin(ctx context.Context, tableID models.TableID, pin string) error {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return fmt.Errorf("error reading credentials: %w", err)
	}

	table, _ := snap.FindTable(tableID)
	ok := utils.CheckSecret(table.PinHash, pin)
	metrics.RecordAuthAttempt("pin", ok)
	if !ok {
		logger.FromContext(ctx).Info().Stringer("table_id", tableID).Msg("table pin rejected")
		return ErrInvalidCredentials
	}

	return nil
}

// SaveTable creates or replaces a table. The PIN is hashed before the
// snapshot lock is taken.
func (s *credentialService) SaveTable(ctx context.Context, req models.SaveTableRequest) (models.TableView, error) {
	if req.ID <= 0 || req.PIN == "" {
		return models.TableView{}, fmt.Errorf("%w: table id and pin are required", ErrValidation)
	}

	hash, err := utils.HashSecret(req.PIN, s.bcryptCost)
	if err != nil {
		return models.TableView{}, err
	}

	saved := models.Table{ID: req.ID, Name: strings.TrimSpace(req.Name), PinHash: hash}
	_, err = s.store.Update(ctx, func(snap *models.Snapshot) error {
		idx := slices.IndexFunc(snap.Tables, func(t models.Table) bool { return t.ID == req.ID })
		if idx >= 0 {
			snap.Tables[idx] = saved
		} else {
			snap.Tables = append(snap.Tables, saved)
		}
		slices.SortFunc(snap.Tables, func(a, b models.Table) int {
			return cmp.Compare(a.ID, b.ID)
		})
		return nil
	})
	if err != nil {
		return models.TableView{}, fmt.Errorf("error saving table: %w", err)
	}

	logger.FromContext(ctx).Info().Stringer("table_id", req.ID).Msg("table saved")
	return saved.Public(), nil
}

func (s *credentialService) ListTables(ctx context.Context) ([]models.TableView, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading tables: %w", err)
	}

	views := make([]models.TableView, 0, len(snap.Tables))
	for _, t := range snap.Tables {
		views = append(views, t.Public())
	}
	return views, nil
}
