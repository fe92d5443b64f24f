package preview_test

import (
	"strings"
	"unicode/utf8"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jrh3k5/checkwriter/bank"
	"github.com/jrh3k5/checkwriter/check"
	"github.com/jrh3k5/checkwriter/currency"
	"github.com/jrh3k5/checkwriter/preview"
)

var _ = Describe("Preview", func() {
	var account *bank.Account
	var written *check.Check

	BeforeEach(func() {
		account = &bank.Account{
			Name:          "Chase Business Checking",
			Address:       "1 Chase Plaza, New York, NY",
			AccountNumber: "987654321",
		}

		written = &check.Check{
			Number:      1001,
			Date:        "2026-10-19",
			Payee:       "Acme Supplies",
			Amount:      150075,
			AmountWords: "One thousand five hundred dollars and 75/100",
			Memo:        "Office supplies",
			Status:      check.StatusPrinted,
		}
	})

	render := func(layout preview.Layout) []string {
		var out strings.Builder
		Expect(preview.Render(&out, layout)).To(Succeed(), "rendering should not fail")

		return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	}

	It("lays out the face of the check at a fixed width", func() {
		lines := render(preview.NewLayout(written, account))

		for _, line := range lines {
			Expect(line).To(HaveLen(preview.Width), "every line should be exactly the check width: '%s'", line)
		}

		text := strings.Join(lines, "\n")
		Expect(text).To(ContainSubstring("No. 1001"), "the check number should be shown")
		Expect(text).To(ContainSubstring("ORDER OF  Acme Supplies"), "the payee should be shown")
		Expect(text).To(ContainSubstring("$1,500.75"), "the display amount should be shown")
		Expect(text).To(ContainSubstring("One thousand five hundred dollars and 75/100***"), "the words should be padded with asterisks")
		Expect(text).To(ContainSubstring("Acct ****4321"), "only the last four account digits should be shown")
		Expect(text).ToNot(ContainSubstring("VOID"), "a printed check should not be marked void")
	})

	It("shows the stored words rather than recomputing them", func() {
		written.AmountWords = "Stored wording dollars and 75/100"

		text := strings.Join(render(preview.NewLayout(written, account)), "\n")
		Expect(text).To(ContainSubstring("Stored wording dollars and 75/100"), "the stored words should be shown verbatim")
	})

	It("wraps long amounts onto more lines", func() {
		words, err := currency.ToWords(currency.MaxCents)
		Expect(err).ToNot(HaveOccurred(), "writing out the largest amount should not fail")
		written.AmountWords = words

		lines := render(preview.NewLayout(written, account))
		for _, line := range lines {
			Expect(line).To(HaveLen(preview.Width), "every line should be exactly the check width: '%s'", line)
		}

		text := strings.Join(lines, "\n")
		Expect(text).To(ContainSubstring("DOLLARS"), "the DOLLARS label should be shown")
		Expect(text).To(ContainSubstring("99/100*"), "the cents should not be cut off")
	})

	It("measures names with accented letters by character", func() {
		account.Name = "Crédit Société Générale"
		written.Payee = "Café Müller Bäckerei"
		written.Memo = "Brötchen für Büro"

		lines := render(preview.NewLayout(written, account))
		for _, line := range lines {
			Expect(utf8.RuneCountInString(line)).To(Equal(preview.Width), "every line should be exactly the check width: '%s'", line)
		}

		text := strings.Join(lines, "\n")
		Expect(text).To(ContainSubstring("ORDER OF  Café Müller Bäckerei"), "the payee should be shown whole")
		Expect(text).To(ContainSubstring("Crédit Société Générale"), "the bank name should be shown whole")
	})

	It("cuts long names between characters", func() {
		written.Payee = strings.Repeat("é", 80)

		lines := render(preview.NewLayout(written, account))
		for _, line := range lines {
			Expect(utf8.ValidString(line)).To(BeTrue(), "a cut name should stay valid text: '%s'", line)
			Expect(utf8.RuneCountInString(line)).To(Equal(preview.Width), "every line should be exactly the check width: '%s'", line)
		}
	})

	It("marks void checks", func() {
		written.Status = check.StatusVoid

		text := strings.Join(render(preview.NewLayout(written, account)), "\n")
		Expect(text).To(ContainSubstring("*** VOID ***"), "void checks should be marked")
	})
})
