package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/daybook/internal/models"
)

type JournalAddCmd struct {
	Content string `arg:"" help:"Entry content (text, or a file reference for voice/image entries)."`
	Type    string `short:"t" default:"text" enum:"text,voice,image" help:"Entry type."`
	Tags    string `help:"Comma-separated tags."`
}

func (c *JournalAddCmd) Run(ctx *Context) error {
	var tags []string
	if c.Tags != "" {
		tags = strings.Split(c.Tags, ",")
	}

	entry, err := ctx.Store.AddJournalEntry(models.EntryType(c.Type), c.Content, tags)
	if err != nil {
		return err
	}

	fmt.Printf("Added %s entry %s\n", entry.Type, shortID(entry.ID))
	return nil
}

type JournalListCmd struct {
	Tag string `help:"Only show entries carrying this tag."`
}

func (c *JournalListCmd) Run(ctx *Context) error {
	entries := ctx.Store.JournalEntries()
	shown := 0
	for _, entry := range entries {
		if c.Tag != "" && !hasTag(entry, c.Tag) {
			continue
		}
		shown++
		tags := ""
		if len(entry.Tags) > 0 {
			tags = labelStyle.Render(" #" + strings.Join(entry.Tags, " #"))
		}
		fmt.Printf("%s %s [%s] %s%s\n", shortID(entry.ID), entry.Date, entry.Type, entry.Content, tags)
	}
	if shown == 0 {
		fmt.Println("No journal entries.")
	}
	return nil
}

type JournalDeleteCmd struct {
	ID string `arg:"" help:"Entry id."`
}

func (c *JournalDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteJournalEntry(c.ID); err != nil {
		return err
	}
	fmt.Println("Deleted journal entry.")
	return nil
}

type LogAddCmd struct {
	Text string `arg:"" help:"Log text."`
}

func (c *LogAddCmd) Run(ctx *Context) error {
	if _, err := ctx.Store.AddLog(c.Text); err != nil {
		return err
	}
	fmt.Println("Logged.")
	return nil
}

func hasTag(entry models.JournalEntry, tag string) bool {
	for _, t := range entry.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
