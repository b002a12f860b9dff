// Package roster implements the file-backed user directory: a plain
// text file is the authoritative list of users and PINs, cached in
// memory and re-read whenever its modification timestamp changes.
// The roster stays editable without a process restart, at the cost of
// one stat per lookup.
package roster

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/incubadora/ponto-api/internal/core/domain"
)

type entry struct {
	nome string
	pin  string
}

// Directory is the explicit cache object: mapping plus last-seen
// mtime, guarded by a mutex. A stale read during a concurrent file
// update is acceptable and self-heals on the next lookup.
type Directory struct {
	path string
	log  zerolog.Logger

	mu      sync.Mutex
	mtime   time.Time
	entries map[string]entry
}

// NewDirectory loads the roster once. A missing or unreadable file is
// a startup failure: the process must not serve traffic without an
// authoritative roster.
func NewDirectory(path string, log zerolog.Logger) (*Directory, error) {
	d := &Directory{path: path, log: log}
	if err := d.reload(); err != nil {
		return nil, fmt.Errorf("roster: %w", err)
	}
	return d, nil
}

// Resolve looks up a normalized CPF, refreshing the cache first when
// the file changed on disk.
func (d *Directory) Resolve(_ context.Context, cpf string) (*domain.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.refreshLocked(); err != nil {
		// Serve the cached roster; the next lookup retries.
		d.log.Warn().Err(err).Str("path", d.path).Msg("roster refresh failed, serving cache")
	}

	e, ok := d.entries[cpf]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &domain.User{Nome: e.nome, CPF: cpf, Credential: e.pin, Ativo: true}, nil
}

// VerifyPIN compares the normalized supplied PIN with the roster PIN.
// The roster stores PINs in plain text, so this is a direct equality
// check.
func (d *Directory) VerifyPIN(user *domain.User, pin string) error {
	if user.Credential != pin {
		return domain.ErrInvalidPIN
	}
	return nil
}

func (d *Directory) refreshLocked() error {
	info, err := os.Stat(d.path)
	if err != nil {
		return err
	}
	if info.ModTime().Equal(d.mtime) {
		return nil
	}
	return d.loadLocked(info.ModTime())
}

func (d *Directory) reload() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	info, err := os.Stat(d.path)
	if err != nil {
		return err
	}
	return d.loadLocked(info.ModTime())
}

func (d *Directory) loadLocked(mtime time.Time) error {
	f, err := os.Open(d.path)
	if err != nil {
		return err
	}
	defer f.Close()

	entries, skipped := parse(f)
	d.entries = entries
	d.mtime = mtime

	d.log.Info().
		Str("path", d.path).
		Int("users", len(entries)).
		Int("skipped", skipped).
		Msg("roster loaded")
	return nil
}

// parse reads roster lines: comments (#), blank lines and header rows
// are skipped; malformed records are discarded, not fatal; on
// duplicate CPFs the later record wins.
func parse(r io.Reader) (map[string]entry, int) {
	entries := make(map[string]entry)
	skipped := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := splitRecord(line)
		if len(fields) < 3 {
			skipped++
			continue
		}

		nome := strings.TrimSpace(fields[0])
		rawCPF := strings.TrimSpace(fields[1])
		rawPIN := strings.TrimSpace(fields[2])

		if isHeader(nome, rawCPF, rawPIN) {
			continue
		}

		cpf := domain.NormalizeDigits(rawCPF)
		pin := domain.NormalizeDigits(rawPIN)
		if !domain.ValidCPF(cpf) || !domain.ValidPIN(pin) {
			skipped++
			continue
		}

		entries[cpf] = entry{nome: nome, pin: pin}
	}

	return entries, skipped
}

// splitRecord splits on ";" when present, "," otherwise.
func splitRecord(line string) []string {
	if strings.Contains(line, ";") {
		return strings.Split(line, ";")
	}
	return strings.Split(line, ",")
}

func isHeader(nome, cpf, pin string) bool {
	n := strings.ToLower(nome)
	c := strings.ToLower(cpf)
	p := strings.ToLower(pin)
	return (n == "nome" || n == "name") && c == "cpf" && (p == "pin" || p == "senha")
}
