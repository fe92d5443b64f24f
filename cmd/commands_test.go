package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jrh3k5/checkwriter/check"
	"github.com/jrh3k5/checkwriter/store"
	"github.com/jrh3k5/checkwriter/validation"
)

var _ = Describe("Commands", func() {
	var configFile string
	var dataFile string

	writeConfig := func(extra string) {
		contents := fmt.Sprintf("data_file: %s\nlog_level: error\n%s", dataFile, extra)
		Expect(os.WriteFile(configFile, []byte(contents), 0o600)).To(Succeed(), "writing the config should not fail")
	}

	run := func(args ...string) (string, error) {
		var out bytes.Buffer

		root := newRootCommand()
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs(append([]string{"--config", configFile}, args...))

		err := root.ExecuteContext(context.Background())

		return out.String(), err
	}

	mustRun := func(args ...string) string {
		out, err := run(args...)
		Expect(err).ToNot(HaveOccurred(), "running %v should not fail", args)
		return out
	}

	BeforeEach(func() {
		dir := GinkgoT().TempDir()
		configFile = filepath.Join(dir, "checkwriter.yaml")
		dataFile = filepath.Join(dir, "checks.yaml")
		writeConfig("")
	})

	Context("words", func() {
		It("writes out an amount", func() {
			out := mustRun("words", "$1,500.75")
			Expect(out).To(Equal("$1,500.75\nOne thousand five hundred dollars and 75/100\n"), "the display amount and words should be printed")
		})

		It("rejects a negative amount", func() {
			_, err := run("words", "-1")
			Expect(err).To(HaveOccurred(), "negative amounts should be rejected")
		})
	})

	Context("writing a check", func() {
		BeforeEach(func() {
			mustRun("accounts", "add", "--name", "Chase Business Checking", "--routing", "123456789", "--number", "987654321", "--start", "1001")
			mustRun("vendors", "add", "--name", "Acme Supplies", "--address", "123 Market Street", "--email", "contact@acme.com", "--memo", "Office supplies")
		})

		It("composes, prints and voids a check", func() {
			out := mustRun("compose", "--account", "Chase Business Checking", "--vendor", "Acme Supplies", "--amount", "21", "--date", "2026-10-19")
			Expect(out).To(ContainSubstring("Saved check #1001 as a draft"), "the check should be saved")
			Expect(out).To(ContainSubstring("Twenty-one dollars and 00/100"), "the preview should show the words")

			out = mustRun("print", "1001")
			Expect(out).To(ContainSubstring("ORDER OF  Acme Supplies"), "the printed check should show the payee")

			out = mustRun("list", "--status", string(check.StatusPrinted))
			Expect(out).To(ContainSubstring("1001"), "the printed check should be listed")
			Expect(out).To(ContainSubstring("$21.00"), "the amount should be listed")

			out = mustRun("totals", "--from", "2026-10-01", "--to", "2026-10-31", "--balance", "10", "--minimum", "5")
			Expect(out).To(ContainSubstring("$21.00"), "the printed check should be outstanding")
			Expect(out).To(ContainSubstring("Deposit $16.00"), "the shortfall should be reported")

			out = mustRun("void", "1001")
			Expect(out).To(ContainSubstring("Voided check #1001"), "the check should be voided")

			out = mustRun("show", "1001")
			Expect(out).To(ContainSubstring("*** VOID ***"), "the voided check should be marked")
		})

		It("prints a check again after it was printed", func() {
			mustRun("compose", "--account", "Chase Business Checking", "--vendor", "Acme Supplies", "--amount", "21", "--date", "2026-10-19")
			mustRun("print", "1001")

			out := mustRun("print", "1001")
			Expect(out).To(ContainSubstring("ORDER OF  Acme Supplies"), "the reprinted check should show the payee")
			Expect(out).To(ContainSubstring("Twenty-one dollars and 00/100"), "the reprinted check should show the stored words")

			out = mustRun("list", "--status", string(check.StatusPrinted))
			Expect(out).To(ContainSubstring("1001"), "the check should still be printed")
		})

		It("updates bank accounts and vendors", func() {
			out := mustRun("accounts", "update", "chase business checking", "--name", "Chase Operating", "--address", "1 Chase Plaza")
			Expect(out).To(ContainSubstring("Updated bank account 'Chase Operating'"), "the account should be renamed")

			out = mustRun("accounts", "list")
			Expect(out).To(ContainSubstring("Chase Operating"), "the new name should be listed")
			Expect(out).To(ContainSubstring("123456789"), "unchanged fields should be kept")

			_, err := run("accounts", "update", "Chase Operating", "--routing", "-12345678")
			Expect(err).To(MatchError(validation.ErrInvalidRecord), "an invalid change should be rejected")

			out = mustRun("vendors", "update", "Acme Supplies", "--memo", "Invoices")
			Expect(out).To(ContainSubstring("Updated vendor 'Acme Supplies'"), "the vendor should be updated")

			out = mustRun("vendors", "list")
			Expect(out).To(ContainSubstring("Invoices"), "the new memo should be listed")
			Expect(out).To(ContainSubstring("contact@acme.com"), "unchanged fields should be kept")
		})

		It("deletes vendors and unused bank accounts", func() {
			mustRun("compose", "--account", "Chase Business Checking", "--vendor", "Acme Supplies", "--amount", "21", "--date", "2026-10-19")

			_, err := run("accounts", "delete", "Chase Business Checking")
			Expect(err).To(MatchError(store.ErrInUse), "an account with checks should be kept")

			out := mustRun("vendors", "delete", "Acme Supplies")
			Expect(out).To(ContainSubstring("Deleted vendor 'Acme Supplies'"), "the vendor should be deleted")

			out = mustRun("show", "1001")
			Expect(out).To(ContainSubstring("Acme Supplies"), "the check should keep its payee")

			mustRun("delete", "1001")
			out = mustRun("accounts", "delete", "Chase Business Checking")
			Expect(out).To(ContainSubstring("Deleted bank account 'Chase Business Checking'"), "the unused account should be deleted")

			out = mustRun("accounts", "list")
			Expect(out).ToNot(ContainSubstring("Chase Business Checking"), "the account should no longer be listed")
		})

		When("the session is a demo", func() {
			It("refuses to change bank accounts and vendors", func() {
				writeConfig("demo: true\n")

				_, err := run("accounts", "update", "Chase Business Checking", "--name", "Other")
				Expect(err).To(MatchError(check.ErrReadOnly), "demo sessions should not change accounts")

				_, err = run("accounts", "delete", "Chase Business Checking")
				Expect(err).To(MatchError(check.ErrReadOnly), "demo sessions should not delete accounts")

				_, err = run("vendors", "update", "Acme Supplies", "--memo", "Other")
				Expect(err).To(MatchError(check.ErrReadOnly), "demo sessions should not change vendors")

				_, err = run("vendors", "delete", "Acme Supplies")
				Expect(err).To(MatchError(check.ErrReadOnly), "demo sessions should not delete vendors")
			})

			It("refuses to write checks", func() {
				writeConfig("demo: true\n")

				_, err := run("compose", "--account", "Chase Business Checking", "--vendor", "Acme Supplies", "--amount", "21")
				Expect(err).To(MatchError(check.ErrReadOnly), "demo sessions should not write checks")
			})
		})
	})
})
