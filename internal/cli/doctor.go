package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"habitmini/internal/keyring"
	"habitmini/internal/storage"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	stateLoaded := false

	// Check 1: storage reachable
	if err := checkStorageReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		stateLoaded = true
	}

	// Check 2: snapshot well-formed (only if storage loaded)
	if stateLoaded {
		if err := checkSnapshot(ctx); err != nil {
			fmt.Printf("❌ Snapshot: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Snapshot: OK\n")
		}
	} else {
		fmt.Printf("⊘ Snapshot: SKIPPED (storage not reachable)\n")
	}

	// Check 3: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 4: no duplicate habitmini process holding the same state file
	if err := checkDuplicateProcess(); err != nil {
		fmt.Printf("⚠ Single process: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single process: OK\n")
	}

	// Check 5: keyring available
	if keyring.IsAvailable() {
		fmt.Printf("✓ Keyring: OK\n")
	} else {
		fmt.Printf("⚠ Keyring: WARNING\n")
		fmt.Printf("   System keyring unavailable; auth tokens cannot be stored\n")
	}

	// Check 6: clock/timezone sanity
	if err := checkClockTimezone(ctx); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 7: backend health
	if err := checkBackend(ctx); err != nil {
		fmt.Printf("⚠ Backend health: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backend health: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStorageReachable(ctx *Context) error {
	if err := ctx.Storage.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	// For SQLite, also try a simple query
	if sqliteStore, ok := ctx.Storage.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

func checkSnapshot(ctx *Context) error {
	snap, ok, err := ctx.Storage.LoadSnapshot()
	if err != nil {
		return fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if !ok {
		// Fresh install, nothing to validate
		return nil
	}

	seen := make(map[int64]bool)
	for _, h := range snap.Habits {
		if seen[h.ID] {
			return fmt.Errorf("duplicate habit id found: %d", h.ID)
		}
		seen[h.ID] = true
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		// Postgres storage has no local backups; not a problem
		return nil
	}
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'habitmini backup create'")
	}
	return nil
}

func checkDuplicateProcess() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	self := os.Getpid()
	count := 0
	for _, p := range procs {
		name := strings.TrimSuffix(filepath.Base(p.Executable()), ".exe")
		if name == "habitmini" && p.Pid() != self {
			count++
		}
	}
	if count > 0 {
		return fmt.Errorf("%d other habitmini process(es) running; concurrent writes to the same state file can lose data", count)
	}
	return nil
}

func checkClockTimezone(ctx *Context) error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	// Compare against the profile timezone when a snapshot is available
	snap, ok, err := ctx.Storage.LoadSnapshot()
	if err != nil || !ok || snap.User == nil || snap.User.Settings.Timezone == "" {
		return nil
	}
	loc, err := time.LoadLocation(snap.User.Settings.Timezone)
	if err != nil {
		return fmt.Errorf("profile timezone %q is not a valid IANA zone", snap.User.Settings.Timezone)
	}
	_, localOffset := now.Zone()
	_, profileOffset := now.In(loc).Zone()
	if localOffset != profileOffset {
		fmt.Printf("   Note: system timezone differs from profile timezone %s; reminder times are shown in system time\n", snap.User.Settings.Timezone)
	}
	return nil
}

func checkBackend(ctx *Context) error {
	rctx, cancel := reqContext()
	defer cancel()

	if err := ctx.API.Health(rctx); err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	return nil
}
