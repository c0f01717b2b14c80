package cli

import (
	"fmt"

	"habitmini/internal/backup"
	"habitmini/internal/storage"
)

type BackupCmd struct {
	Create  *BackupCreateCmd  `cmd:"" help:"Create a backup of the state file."`
	List    *BackupListCmd    `cmd:"" help:"List available backups."`
	Restore *BackupRestoreCmd `cmd:"" help:"Restore the state file from a backup."`
}

func backupManager(ctx *Context) (*backup.Manager, error) {
	if _, ok := ctx.Storage.(*storage.PostgresStore); ok {
		return nil, fmt.Errorf("backups are not supported for postgres storage; use pg_dump")
	}
	return backup.NewManager(ctx.Storage.GetConfigPath()), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	path, err := mgr.Create()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}
	for _, b := range backups {
		fmt.Printf("%s  %s  %d bytes\n", b.Timestamp.Format("2006-01-02 15:04:05"), b.Path, b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" help:"Backup file to restore from."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	if err := mgr.Restore(c.Path); err != nil {
		return err
	}
	fmt.Println("State restored. The pre-restore state was backed up first.")
	return nil
}
