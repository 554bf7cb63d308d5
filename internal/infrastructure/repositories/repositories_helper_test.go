package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT UNIQUE NOT NULL,
		full_name TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE corporates (
		id TEXT PRIMARY KEY,
		profile_id TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		designation TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createTokenTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE tokens (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		access_token TEXT UNIQUE NOT NULL,
		refresh_token TEXT UNIQUE NOT NULL,
		expires_at DATETIME NOT NULL,
		revoked BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createOtpTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE otps (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		code TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		used BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createBankTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE banks (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		swift_code TEXT UNIQUE NOT NULL,
		country TEXT NOT NULL,
		city TEXT NOT NULL,
		type TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE bank_contacts (
		id TEXT PRIMARY KEY,
		bank_id TEXT NOT NULL,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createEmailTemplateTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE email_templates (
		id TEXT PRIMARY KEY,
		key TEXT UNIQUE NOT NULL,
		subject TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createFormTemplateTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE form_templates (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		version INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE form_fields (
		id TEXT PRIMARY KEY,
		template_id TEXT NOT NULL,
		key TEXT NOT NULL,
		label TEXT NOT NULL,
		field_type TEXT NOT NULL,
		placeholder TEXT,
		default_value TEXT,
		answer TEXT,
		help_text TEXT,
		sort_order INTEGER NOT NULL,
		width TEXT NOT NULL DEFAULT 'full',
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE field_options (
		id TEXT PRIMARY KEY,
		field_id TEXT NOT NULL,
		label TEXT NOT NULL,
		value TEXT NOT NULL,
		sort_order INTEGER NOT NULL,
		is_default BOOLEAN NOT NULL DEFAULT 0
	);`)
	mustExec(t, db, `CREATE TABLE field_validations (
		id TEXT PRIMARY KEY,
		field_id TEXT NOT NULL,
		rule_type TEXT NOT NULL,
		value TEXT,
		error_message TEXT NOT NULL
	);`)
}

func createRequestTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE requests (
		id TEXT PRIMARY KEY,
		creator_id TEXT NOT NULL,
		form_template_id TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
