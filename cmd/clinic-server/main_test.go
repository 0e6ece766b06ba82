package main

import "testing"

func TestMigrateCmdSubcommands(t *testing.T) {
	cmd := migrateCmd()
	want := map[string]bool{"up": false, "status": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("migrate %s subcommand missing", name)
		}
	}
}

func TestUsersCmdSubcommands(t *testing.T) {
	cmd := usersCmd()
	found := false
	for _, sub := range cmd.Commands() {
		if sub.Name() == "hash-legacy" {
			found = true
		}
	}
	if !found {
		t.Error("users hash-legacy subcommand missing")
	}
}

func TestMigrateUpHasDirFlag(t *testing.T) {
	cmd := migrateCmd()
	for _, sub := range cmd.Commands() {
		if sub.Name() == "up" {
			if sub.Flags().Lookup("dir") == nil {
				t.Error("migrate up missing --dir flag")
			}
		}
	}
}
