package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gophervault/vaultsync/internal/logger"
	"github.com/gophervault/vaultsync/models"
)

// The server-owned entity stores (collections, organizations, policies,
// equivalent domains) have no offline-mutation path; their only write
// operation is a wholesale transactional replace driven by sync.

// replaceRows runs the shared reconcile shape for a server-owned table:
// upsert every snapshot row inside one transaction, then drop the user's
// rows that the snapshot no longer contains.
func replaceRows(ctx context.Context, db *DB, notifier *Notifier, table, userID, upsertQuery string, rowsArgs [][]any, keepIDs []string) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "store.replaceRows").
			Str("table", table).
			Str("user_id", userID).
			Msg("failed to begin reconcile transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, args := range rowsArgs {
		if _, err = tx.ExecContext(ctx, upsertQuery, args...); err != nil {
			log.Err(err).
				Str("func", "store.replaceRows").
				Str("table", table).
				Str("user_id", userID).
				Msg("failed to upsert snapshot row")
			return fmt.Errorf("failed to upsert snapshot row into %s: %w: %w", table, ErrExecutingStatement, err)
		}
	}

	query, args, err := buildDeleteAbsent(table, userID, keepIDs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete absent rows from %s: %w: %w", table, ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	notifier.Broadcast(userID)
	return nil
}

// collectionStore is the SQLite-backed implementation of [CollectionStore].
type collectionStore struct {
	*DB
	notifier *Notifier
	logger   *logger.Logger
}

func NewCollectionStore(db *DB, notifier *Notifier, logger *logger.Logger) CollectionStore {
	return &collectionStore{DB: db, notifier: notifier, logger: logger}
}

func (s *collectionStore) ReplaceAll(ctx context.Context, userID string, collections []models.Collection) error {
	rowsArgs := make([][]any, 0, len(collections))
	keepIDs := make([]string, 0, len(collections))
	for _, c := range collections {
		rowsArgs = append(rowsArgs, []any{c.UserID, c.ID, c.OrganizationID, string(c.Name), c.ReadOnly, c.RevisionDate})
		keepIDs = append(keepIDs, c.ID)
	}
	return replaceRows(ctx, s.DB, s.notifier, "collections", userID, upsertCollection, rowsArgs, keepIDs)
}

func (s *collectionStore) FetchAll(ctx context.Context, userID string) ([]models.Collection, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, getAllCollections, userID)
	if err != nil {
		log.Err(err).
			Str("func", "collectionStore.FetchAll").
			Str("user_id", userID).
			Msg("failed to execute query for getting all collections")
		return nil, fmt.Errorf("failed to query all collections: %w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var collections []models.Collection
	for rows.Next() {
		var c models.Collection
		if scanErr := rows.Scan(&c.UserID, &c.ID, &c.OrganizationID, &c.Name, &c.ReadOnly, &c.RevisionDate); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		collections = append(collections, c)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return collections, nil
}

// organizationStore is the SQLite-backed implementation of
// [OrganizationStore].
type organizationStore struct {
	*DB
	notifier *Notifier
	logger   *logger.Logger
}

func NewOrganizationStore(db *DB, notifier *Notifier, logger *logger.Logger) OrganizationStore {
	return &organizationStore{DB: db, notifier: notifier, logger: logger}
}

func (s *organizationStore) ReplaceAll(ctx context.Context, userID string, organizations []models.Organization) error {
	rowsArgs := make([][]any, 0, len(organizations))
	keepIDs := make([]string, 0, len(organizations))
	for _, o := range organizations {
		rowsArgs = append(rowsArgs, []any{o.UserID, o.ID, o.Name, o.Enabled, o.RevisionDate})
		keepIDs = append(keepIDs, o.ID)
	}
	return replaceRows(ctx, s.DB, s.notifier, "organizations", userID, upsertOrganization, rowsArgs, keepIDs)
}

func (s *organizationStore) FetchAll(ctx context.Context, userID string) ([]models.Organization, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, getAllOrganizations, userID)
	if err != nil {
		log.Err(err).
			Str("func", "organizationStore.FetchAll").
			Str("user_id", userID).
			Msg("failed to execute query for getting all organizations")
		return nil, fmt.Errorf("failed to query all organizations: %w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var organizations []models.Organization
	for rows.Next() {
		var o models.Organization
		if scanErr := rows.Scan(&o.UserID, &o.ID, &o.Name, &o.Enabled, &o.RevisionDate); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		organizations = append(organizations, o)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return organizations, nil
}

// policyStore is the SQLite-backed implementation of [PolicyStore].
type policyStore struct {
	*DB
	notifier *Notifier
	logger   *logger.Logger
}

func NewPolicyStore(db *DB, notifier *Notifier, logger *logger.Logger) PolicyStore {
	return &policyStore{DB: db, notifier: notifier, logger: logger}
}

func (s *policyStore) ReplaceAll(ctx context.Context, userID string, policies []models.Policy) error {
	rowsArgs := make([][]any, 0, len(policies))
	keepIDs := make([]string, 0, len(policies))
	for _, p := range policies {
		var data any
		if len(p.Data) > 0 {
			data = string(p.Data)
		}
		rowsArgs = append(rowsArgs, []any{p.UserID, p.ID, p.OrganizationID, p.Type, p.Enabled, data})
		keepIDs = append(keepIDs, p.ID)
	}
	return replaceRows(ctx, s.DB, s.notifier, "policies", userID, upsertPolicy, rowsArgs, keepIDs)
}

func (s *policyStore) FetchAll(ctx context.Context, userID string) ([]models.Policy, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, getAllPolicies, userID)
	if err != nil {
		log.Err(err).
			Str("func", "policyStore.FetchAll").
			Str("user_id", userID).
			Msg("failed to execute query for getting all policies")
		return nil, fmt.Errorf("failed to query all policies: %w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var policies []models.Policy
	for rows.Next() {
		var (
			p    models.Policy
			data sql.NullString
		)
		if scanErr := rows.Scan(&p.UserID, &p.ID, &p.OrganizationID, &p.Type, &p.Enabled, &data); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		if data.Valid {
			p.Data = []byte(data.String)
		}
		policies = append(policies, p)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return policies, nil
}

// domainStore is the SQLite-backed implementation of [DomainStore]. The
// whole equivalent-domains list is one row per user.
type domainStore struct {
	*DB
	notifier *Notifier
	logger   *logger.Logger
}

func NewDomainStore(db *DB, notifier *Notifier, logger *logger.Logger) DomainStore {
	return &domainStore{DB: db, notifier: notifier, logger: logger}
}

func (s *domainStore) Replace(ctx context.Context, domains models.EquivalentDomains) error {
	log := logger.FromContext(ctx)

	groups, err := json.Marshal(domains.Groups)
	if err != nil {
		return fmt.Errorf("%w: encode domain groups: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, replaceDomains, domains.UserID, string(groups)); err != nil {
		log.Err(err).
			Str("func", "domainStore.Replace").
			Str("user_id", domains.UserID).
			Msg("failed to replace equivalent domains")
		return fmt.Errorf("failed to replace equivalent domains: %w: %w", ErrExecutingStatement, err)
	}

	s.notifier.Broadcast(domains.UserID)
	return nil
}

func (s *domainStore) Fetch(ctx context.Context, userID string) (models.EquivalentDomains, error) {
	log := logger.FromContext(ctx)

	var groups string
	domains := models.EquivalentDomains{UserID: userID}

	err := s.DB.QueryRowContext(ctx, getDomains, userID).Scan(&domains.UserID, &groups)
	if errors.Is(err, sql.ErrNoRows) {
		// No sync has run yet; an empty list is a valid state.
		return domains, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "domainStore.Fetch").
			Str("user_id", userID).
			Msg("failed to query equivalent domains")
		return models.EquivalentDomains{}, fmt.Errorf("failed to query equivalent domains: %w: %w", ErrExecutingQuery, err)
	}

	if err = json.Unmarshal([]byte(groups), &domains.Groups); err != nil {
		return models.EquivalentDomains{}, fmt.Errorf("%w: decode domain groups: %w", ErrScanningRow, err)
	}

	return domains, nil
}
