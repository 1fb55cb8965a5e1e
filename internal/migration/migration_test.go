package migration

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// fakeStore is an in-memory credential table.
type fakeStore struct {
	rows    map[int]Credencial
	backups map[string]map[int]Credencial
	ancho   int

	// failIDs makes ActualizarContrasena fail for the given ids.
	failIDs map[int]bool

	backupCalls int
	widenCalls  int
}

func newFakeStore(rows ...Credencial) *fakeStore {
	s := &fakeStore{
		rows:    make(map[int]Credencial),
		backups: make(map[string]map[int]Credencial),
		ancho:   50,
		failIDs: make(map[int]bool),
	}
	for _, r := range rows {
		s.rows[r.IDUsuario] = r
	}
	return s
}

func (s *fakeStore) Estado(context.Context) (*Estado, error) {
	e := &Estado{}
	for _, r := range s.rows {
		e.Total++
		if len(r.Contrasena) >= hashedThreshold {
			e.YaEncriptadas++
		} else {
			e.SinEncriptar++
		}
	}
	return e, nil
}

func (s *fakeStore) CrearBackup(_ context.Context, nombre string) error {
	s.backupCalls++
	if _, ok := s.backups[nombre]; ok {
		return nil
	}
	copia := make(map[int]Credencial, len(s.rows))
	for id, r := range s.rows {
		copia[id] = r
	}
	s.backups[nombre] = copia
	return nil
}

func (s *fakeStore) AnchoColumna(context.Context) (int, error) { return s.ancho, nil }

func (s *fakeStore) EnsancharColumna(context.Context) error {
	s.widenCalls++
	s.ancho = columnWidth
	return nil
}

func (s *fakeStore) SinEncriptar(context.Context) ([]Credencial, error) {
	var out []Credencial
	for _, r := range s.rows {
		if len(r.Contrasena) < hashedThreshold {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IDUsuario < out[j].IDUsuario })
	return out, nil
}

func (s *fakeStore) ActualizarContrasena(_ context.Context, hash string, id int) error {
	if s.failIDs[id] {
		return errors.New("deadlock detected")
	}
	r := s.rows[id]
	r.Contrasena = hash
	s.rows[id] = r
	return nil
}

func (s *fakeStore) Muestra(_ context.Context, limit int) ([]Credencial, error) {
	var out []Credencial
	for _, r := range s.rows {
		if len(r.Contrasena) >= hashedThreshold {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IDUsuario < out[j].IDUsuario })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *fakeStore) Restaurar(_ context.Context, backup string) error {
	copia, ok := s.backups[backup]
	if !ok {
		return errors.New("relation does not exist")
	}
	s.rows = make(map[int]Credencial, len(copia))
	for id, r := range copia {
		s.rows[id] = r
	}
	return nil
}

var fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func TestBackupName(t *testing.T) {
	assert.Equal(t, "usuarios_backup_2024_03_15", BackupName(fixedNow))
}

func TestMigrate_HashesPlaintextRows(t *testing.T) {
	store := newFakeStore(
		Credencial{IDUsuario: 1, Correo: "a@b.com", Contrasena: "plain-a"},
		Credencial{IDUsuario: 2, Correo: "c@d.com", Contrasena: "plain-c"},
	)

	res, err := Migrate(context.Background(), store, fixedNow)
	assert.NoError(t, err)
	assert.False(t, res.NoOp)
	assert.Equal(t, 2, res.Exitosas)
	assert.Empty(t, res.Errores)
	assert.Equal(t, 2, res.Antes.SinEncriptar)
	assert.Equal(t, 0, res.Despues.SinEncriptar)
	assert.Equal(t, 2, res.Despues.YaEncriptadas)

	// Every migrated hash must verify against the original password.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(store.rows[1].Contrasena), []byte("plain-a")))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(store.rows[2].Contrasena), []byte("plain-c")))
}

func TestMigrate_SkipsAlreadyHashed(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("ya-migrada"), bcryptCost)
	assert.NoError(t, err)
	store := newFakeStore(
		Credencial{IDUsuario: 1, Correo: "a@b.com", Contrasena: string(hash)},
		Credencial{IDUsuario: 2, Correo: "c@d.com", Contrasena: "plain-c"},
	)

	res, err := Migrate(context.Background(), store, fixedNow)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.Exitosas)
	// The hashed row is untouched, not double-hashed.
	assert.Equal(t, string(hash), store.rows[1].Contrasena)
}

func TestMigrate_Idempotent(t *testing.T) {
	store := newFakeStore(
		Credencial{IDUsuario: 1, Correo: "a@b.com", Contrasena: "plain-a"},
	)

	first, err := Migrate(context.Background(), store, fixedNow)
	assert.NoError(t, err)
	assert.Equal(t, 1, first.Exitosas)
	hashDespues := store.rows[1].Contrasena

	second, err := Migrate(context.Background(), store, fixedNow)
	assert.NoError(t, err)
	assert.True(t, second.NoOp)
	assert.Equal(t, 0, second.Exitosas)
	assert.Empty(t, second.Backup)
	// No second backup, no rewritten hash.
	assert.Equal(t, 1, store.backupCalls)
	assert.Equal(t, hashDespues, store.rows[1].Contrasena)
}

func TestMigrate_NoOpWithoutBackup(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("x"), bcryptCost)
	assert.NoError(t, err)
	store := newFakeStore(Credencial{IDUsuario: 1, Correo: "a@b.com", Contrasena: string(hash)})

	res, err := Migrate(context.Background(), store, fixedNow)
	assert.NoError(t, err)
	assert.True(t, res.NoOp)
	assert.Equal(t, 0, store.backupCalls)
	assert.Empty(t, store.backups)
}

func TestMigrate_BackupBeforeMutation(t *testing.T) {
	store := newFakeStore(
		Credencial{IDUsuario: 1, Correo: "a@b.com", Contrasena: "plain-a"},
	)

	res, err := Migrate(context.Background(), store, fixedNow)
	assert.NoError(t, err)

	// The backup holds the pre-migration plaintext, not the new hash.
	backup := store.backups[res.Backup]
	assert.Equal(t, "plain-a", backup[1].Contrasena)
}

func TestMigrate_PerRowFaultIsolation(t *testing.T) {
	store := newFakeStore(
		Credencial{IDUsuario: 1, Correo: "a@b.com", Contrasena: "plain-a"},
		Credencial{IDUsuario: 2, Correo: "c@d.com", Contrasena: "plain-c"},
		Credencial{IDUsuario: 3, Correo: "e@f.com", Contrasena: "plain-e"},
	)
	store.failIDs[2] = true

	res, err := Migrate(context.Background(), store, fixedNow)
	assert.NoError(t, err)
	assert.Equal(t, 2, res.Exitosas)
	assert.Len(t, res.Errores, 1)
	assert.Equal(t, 2, res.Errores[0].IDUsuario)
	assert.Equal(t, "c@d.com", res.Errores[0].Correo)

	// Rows after the failure were still migrated.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(store.rows[3].Contrasena), []byte("plain-e")))
	// The failed row keeps its plaintext and is picked up on re-run.
	assert.Equal(t, "plain-c", store.rows[2].Contrasena)
	assert.Equal(t, 1, res.Despues.SinEncriptar)
}

func TestMigrate_WidensNarrowColumn(t *testing.T) {
	store := newFakeStore(Credencial{IDUsuario: 1, Correo: "a@b.com", Contrasena: "plain-a"})
	store.ancho = 50

	_, err := Migrate(context.Background(), store, fixedNow)
	assert.NoError(t, err)
	assert.Equal(t, 1, store.widenCalls)

	wide := newFakeStore(Credencial{IDUsuario: 1, Correo: "a@b.com", Contrasena: "plain-a"})
	wide.ancho = columnWidth
	_, err = Migrate(context.Background(), wide, fixedNow)
	assert.NoError(t, err)
	assert.Equal(t, 0, wide.widenCalls)
}

func TestVerify_ReturnsHashedSample(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("x"), bcryptCost)
	assert.NoError(t, err)
	store := newFakeStore(
		Credencial{IDUsuario: 1, Correo: "a@b.com", Contrasena: string(hash)},
		Credencial{IDUsuario: 2, Correo: "c@d.com", Contrasena: "plain-c"},
		Credencial{IDUsuario: 3, Correo: "e@f.com", Contrasena: string(hash)},
	)

	muestra, err := Verify(context.Background(), store, 5)
	assert.NoError(t, err)
	assert.Len(t, muestra, 2)
	for _, c := range muestra {
		assert.GreaterOrEqual(t, len(c.Contrasena), hashedThreshold)
	}
}

func TestRestore_RevertsToBackup(t *testing.T) {
	store := newFakeStore(Credencial{IDUsuario: 1, Correo: "a@b.com", Contrasena: "plain-a"})

	res, err := Migrate(context.Background(), store, fixedNow)
	assert.NoError(t, err)
	assert.NotEqual(t, "plain-a", store.rows[1].Contrasena)

	assert.NoError(t, Restore(context.Background(), store, res.Backup))
	assert.Equal(t, "plain-a", store.rows[1].Contrasena)
}

func TestRestore_MissingBackupFails(t *testing.T) {
	store := newFakeStore()
	err := Restore(context.Background(), store, "usuarios_backup_1999_01_01")
	assert.Error(t, err)
}
