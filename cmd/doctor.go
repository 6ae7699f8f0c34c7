package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/SurajChaurasia84/TaskManager/internal/config"
	"github.com/SurajChaurasia84/TaskManager/internal/kv"
	"github.com/SurajChaurasia84/TaskManager/internal/task"
	"github.com/SurajChaurasia84/TaskManager/internal/utils"
)

// doctorCommand checks the data dir, the storage backend, the
// persisted tasks payload, and the notifier command.
func doctorCommand(ctx context.Context, cfg *config.Config) error {
	fmt.Println("Taskman Doctor")
	fmt.Println("==============")
	fmt.Println()

	allOK := true

	fmt.Printf("Data dir: %s\n", cfg.DataDir)
	if info, err := os.Stat(cfg.DataDir); err != nil {
		if os.IsNotExist(err) {
			fmt.Println("  ⚠️  Not found (will be created on first write)")
		} else {
			fmt.Printf("  ❌ Error: %v\n", err)
			allOK = false
		}
	} else if !info.IsDir() {
		fmt.Println("  ❌ Error: path is not a directory")
		allOK = false
	} else {
		fmt.Println("  ✅ OK")
	}
	fmt.Println()

	fmt.Printf("Store backend: %s\n", cfg.Store)
	kvStore, err := openKV(cfg)
	if err != nil {
		fmt.Printf("  ❌ Open error: %v\n", err)
		fmt.Println()
		fmt.Println("Some checks failed.")
		return fmt.Errorf("doctor found problems")
	}
	defer kvStore.Close()
	fmt.Println("  ✅ OK")
	fmt.Println()

	fmt.Println("Tasks payload:")
	raw, ok, err := kvStore.Get(ctx, kv.KeyTasks)
	switch {
	case err != nil:
		fmt.Printf("  ❌ Read error: %v\n", err)
		allOK = false
	case !ok:
		fmt.Println("  ⚠️  Absent (empty collection)")
	default:
		tasks, err := task.Decode([]byte(raw))
		if err != nil {
			fmt.Printf("  ❌ Invalid: %v\n", err)
			if loc := validationLocation(err); loc != "" {
				fmt.Printf("     Offending field: %s\n", loc)
			}
			fmt.Println("     The next load will discard it and start empty.")
			allOK = false
		} else {
			fmt.Printf("  ✅ Valid (%d tasks)\n", len(tasks))
		}
	}
	fmt.Println()

	fmt.Println("Notifier:")
	if cfg.NotifyCommand == "" {
		fmt.Println("  ⚠️  Not configured (reminders will not be delivered)")
	} else if _, err := exec.LookPath(cfg.NotifyCommand); err != nil {
		fmt.Printf("  ❌ %s: not found in PATH\n", cfg.NotifyCommand)
		allOK = false
	} else {
		fmt.Printf("  ✅ %s\n", cfg.NotifyCommand)
	}
	fmt.Println()

	if !allOK {
		fmt.Println("Some checks failed.")
		return fmt.Errorf("doctor found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

// validationLocation digs the most specific schema violation location
// out of a decode error, as a dot-notation path.
func validationLocation(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return ""
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return utils.JSONPointerToPath(ve.InstanceLocation)
}
