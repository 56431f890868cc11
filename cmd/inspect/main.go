package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"support-desk/auth"
	"support-desk/domain"
	"support-desk/infrastructure/storage"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

const usage = `usage: inspect <command> [flags]

commands:
  dialogs   list every dialog with its status
  keys      describe raw keys under a prefix
  profile   create or update a profile
  token     issue a token for a profile (JWT_SECRET from the environment)`

func main() {
	_ = godotenv.Load()
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "dialogs":
		err = listDialogs(os.Args[2:])
	case "keys":
		err = listKeys(os.Args[2:])
	case "profile":
		err = saveProfile(os.Args[2:])
	case "token":
		err = issueToken(os.Args[2:])
	default:
		fmt.Println(usage)
		os.Exit(2)
	}
	if err != nil {
		color.Red.Printf("❌ %v\n", err)
		os.Exit(1)
	}
}

func dbPathFlag(fs *flag.FlagSet) *string {
	def := os.Getenv("BADGER_FILEPATH")
	if def == "" {
		def = database.DefaultPath
	}
	return fs.String("db", def, "Path to badger DB")
}

func listDialogs(args []string) error {
	fs := flag.NewFlagSet("dialogs", flag.ExitOnError)
	dbPath := dbPathFlag(fs)
	status := fs.String("status", "", "Only show PENDING, OPEN or CLOSED dialogs")
	_ = fs.Parse(args)

	db, err := openDB(*dbPath, true)
	if err != nil {
		return err
	}
	defer db.Close()

	dialogs, err := storage.NewDialogRepository(db, slog.Default()).All()
	if err != nil {
		return err
	}

	table := newTable([]string{"ID", "Topic", "Status", "Participants", "Last activity", "Idle"})
	for _, d := range dialogs {
		if *status != "" && !strings.EqualFold(*status, string(d.Status)) {
			continue
		}
		table.Append([]string{
			d.ID.String(),
			d.Topic,
			colorStatus(d.Status),
			strings.Join(d.Participants, ","),
			d.LastActivityAt.Local().Format(time.DateTime),
			d.InactiveFor(time.Now()).Truncate(time.Second).String(),
		})
	}
	table.Render()
	return nil
}

func listKeys(args []string) error {
	fs := flag.NewFlagSet("keys", flag.ExitOnError)
	dbPath := dbPathFlag(fs)
	prefix := fs.String("prefix", "dialog:", "Prefix to scan")
	_ = fs.Parse(args)

	db, err := openDB(*dbPath, true)
	if err != nil {
		return err
	}
	defer db.Close()

	table := newTable([]string{"Key", "Kind", "Timestamp", "Entity ID", "Detail"})
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				row := storage.DescribeRecord(string(item.Key()), v)
				table.Append([]string{row.Key, row.Kind, row.Timestamp, row.EntityID, row.Detail})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	table.Render()
	return nil
}

func saveProfile(args []string) error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	dbPath := dbPathFlag(fs)
	id := fs.String("id", "", "Participant id")
	name := fs.String("name", "", "Display name")
	role := fs.String("role", string(domain.RoleUser), "USER, AGENT or ADMIN")
	_ = fs.Parse(args)

	if *id == "" || *name == "" {
		return fmt.Errorf("-id and -name are required")
	}

	db, err := openDB(*dbPath, false)
	if err != nil {
		return err
	}
	defer db.Close()

	profile := domain.Profile{ID: *id, DisplayName: *name, Role: domain.Role(strings.ToUpper(*role))}
	if err := storage.NewProfileRepository(db).SaveProfile(context.Background(), profile); err != nil {
		return err
	}
	color.Green.Printf("✅ Profile %s saved (%s)\n", profile.ID, profile.Role)
	return nil
}

func issueToken(args []string) error {
	fs := flag.NewFlagSet("token", flag.ExitOnError)
	dbPath := dbPathFlag(fs)
	id := fs.String("id", "", "Participant id of an existing profile")
	username := fs.String("username", "", "Username used for the private queue")
	duration := fs.Duration("duration", 24*time.Hour, "Token lifetime")
	_ = fs.Parse(args)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" || *id == "" || *username == "" {
		return fmt.Errorf("JWT_SECRET, -id and -username are required")
	}
	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "support-desk"
	}

	db, err := openDB(*dbPath, true)
	if err != nil {
		return err
	}
	defer db.Close()

	profile, err := storage.NewProfileRepository(db).ProfileForUser(context.Background(), *id)
	if err != nil {
		return err
	}
	token, err := auth.NewTokenManager(secret, issuer, *duration).GenerateToken(domain.Principal{
		ParticipantID: profile.ID,
		Username:      *username,
		Role:          profile.Role,
	})
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func colorStatus(status domain.Status) string {
	switch status {
	case domain.StatusOpen:
		return color.Green.Sprint(status)
	case domain.StatusPending:
		return color.Yellow.Sprint(status)
	default:
		return color.Gray.Sprint(status)
	}
}

// openDB bypasses the lock guard so a running service doesn't block read-only inspection.
func openDB(path string, readOnly bool) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(readOnly).
		WithLogger(nil).
		WithBypassLockGuard(readOnly)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("error while opening Badger at %s: %w", path, err)
	}
	return db, nil
}
