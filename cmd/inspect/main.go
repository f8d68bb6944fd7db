package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"talk/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	prefix := flag.String("prefix", "", "Prefix to scan (user:, email:, doc:), empty for all keys")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	records, err := repositories.InspectAll(db, *prefix)
	if err != nil {
		log.Fatal(err)
	}
	render(os.Stdout, records)
}

func render(w io.Writer, records []repositories.Record) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Key", "Type", "Timestamp", "Entity ID", "Namespace", "Detail"})
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

	for _, r := range records {
		timestamp := ""
		if !r.Timestamp.IsZero() {
			timestamp = r.Timestamp.Format("2006-01-02 15:04:05")
		}
		// The first 8 characters of the id are enough to tell entries apart
		displayID := r.EntityID
		if len(displayID) > 8 {
			displayID = displayID[:8]
		}
		table.Append([]string{r.Key, r.Kind, timestamp, displayID, r.Namespace, r.Detail})
	}
	table.Render()
	_, _ = fmt.Fprintf(w, "%d entries\n", len(records))
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
