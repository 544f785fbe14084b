package qrtext

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/diewo77/qrbill/bill"
	"github.com/diewo77/qrbill/validate"
)

var sampleText = strings.Join([]string{
	"SPC",
	"0200",
	"1",
	"CH4431999123000889012",
	"S",
	"Robert Schneider AG",
	"Rue du Lac",
	"1268",
	"2501",
	"Biel",
	"CH",
	"", "", "", "", "", "", "",
	"1949.75",
	"CHF",
	"S",
	"Pia-Maria Rutschmann-Schnyder",
	"Grosse Marktgasse",
	"28",
	"9400",
	"Rorschach",
	"CH",
	"QRR",
	"210000000003139471430009017",
	"Order dated 18.06.2020",
	"EPD",
	"//S1/01/20170309/11/10201409/20/14000000/22/36958/30/CH106017086/40/1020/41/3010",
	"UV;UltraPay005;12345",
	"XY;XYService;54321",
}, "\r\n")

func sampleBill() *bill.Bill {
	amount := decimal.RequireFromString("1949.75")
	return &bill.Bill{
		Account:  "CH44 3199 9123 0008 8901 2",
		Amount:   &amount,
		Currency: "CHF",
		Creditor: &bill.Address{
			Name: "Robert Schneider AG", Street: "Rue du Lac", HouseNo: "1268",
			PostalCode: "2501", Town: "Biel", CountryCode: "CH",
		},
		Debtor: &bill.Address{
			Name: "Pia-Maria Rutschmann-Schnyder", Street: "Grosse Marktgasse", HouseNo: "28",
			PostalCode: "9400", Town: "Rorschach", CountryCode: "CH",
		},
		Reference:           "21 00000 00003 13947 14300 09017",
		UnstructuredMessage: "Order dated 18.06.2020",
		BillInformation:     "//S1/01/20170309/11/10201409/20/14000000/22/36958/30/CH106017086/40/1020/41/3010",
		AlternativeSchemes: []bill.AlternativeScheme{
			{Name: "Ultraviolet", Instruction: "UV;UltraPay005;12345"},
			{Name: "Xing Yong", Instruction: "XY;XYService;54321"},
		},
		Format: bill.DefaultFormat(),
	}
}

func assertSingleError(t *testing.T, err error, field, key string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Result.Messages) != 1 {
		t.Fatalf("expected a single message, got %+v", verr.Result.Messages)
	}
	m := verr.Result.Messages[0]
	if m.Severity != bill.Error || m.Field != field || m.Key != key {
		t.Fatalf("got (%v, %s, %s), want (error, %s, %s)", m.Severity, m.Field, m.Key, field, key)
	}
}

func TestEncodeSample(t *testing.T) {
	got, err := Encode(sampleBill())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != sampleText {
		t.Fatalf("encoded text differs:\ngot:  %q\nwant: %q", got, sampleText)
	}
}

func TestEncodeInvalidBill(t *testing.T) {
	b := sampleBill()
	b.Currency = "USD"
	_, err := Encode(b)
	assertSingleError(t, err, bill.FieldCurrency, bill.KeyCurrencyNotChfOrEur)
}

func TestEncodeOmitsTrailingSections(t *testing.T) {
	b := sampleBill()
	b.BillInformation = ""
	b.AlternativeSchemes = nil
	got, err := Encode(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(got, "\r\n")
	if len(lines) != 31 {
		t.Fatalf("got %d lines, want 31", len(lines))
	}
	if lines[30] != "EPD" {
		t.Errorf("last line should be the trailer, got %q", lines[30])
	}
}

func TestEncodeBillInfoLineForSchemesOnly(t *testing.T) {
	b := sampleBill()
	b.BillInformation = ""
	got, err := Encode(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(got, "\r\n")
	if len(lines) != 34 {
		t.Fatalf("got %d lines, want 34", len(lines))
	}
	if lines[31] != "" {
		t.Errorf("bill information line should be empty, got %q", lines[31])
	}
	if lines[32] != "UV;UltraPay005;12345" {
		t.Errorf("scheme line misplaced, got %q", lines[32])
	}
}

func TestDecodeSample(t *testing.T) {
	b, err := Decode(sampleText)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Version != bill.V2_0 {
		t.Error("version should be V2_0")
	}
	if b.Account != "CH4431999123000889012" {
		t.Errorf("account: got %q", b.Account)
	}
	if b.Creditor == nil || b.Creditor.Street != "Rue du Lac" || b.Creditor.Type() != bill.AddressTypeStructured {
		t.Errorf("creditor: got %+v", b.Creditor)
	}
	if b.UltimateCreditor != nil {
		t.Error("blank ultimate creditor block should decode to nil")
	}
	if b.Amount == nil || !b.Amount.Equal(decimal.RequireFromString("1949.75")) {
		t.Errorf("amount: got %v", b.Amount)
	}
	if b.Reference != "210000000003139471430009017" {
		t.Errorf("reference: got %q", b.Reference)
	}
	if b.BillInformation == "" || len(b.AlternativeSchemes) != 2 {
		t.Errorf("additional info: got %q, %d schemes", b.BillInformation, len(b.AlternativeSchemes))
	}
	if b.AlternativeSchemes[1].Instruction != "XY;XYService;54321" {
		t.Errorf("scheme instruction: got %q", b.AlternativeSchemes[1].Instruction)
	}
}

func TestDecodeAcceptsBareLinefeeds(t *testing.T) {
	lf := strings.ReplaceAll(sampleText, "\r\n", "\n")
	if _, err := Decode(lf); err != nil {
		t.Fatalf("bare linefeeds should be accepted: %v", err)
	}
}

func TestDecodeCombinedAddress(t *testing.T) {
	text := strings.Replace(sampleText, "S\r\nPia-Maria Rutschmann-Schnyder\r\nGrosse Marktgasse\r\n28\r\n9400\r\nRorschach",
		"K\r\nPia-Maria Rutschmann-Schnyder\r\nGrosse Marktgasse 28\r\n9400 Rorschach\r\n\r\n", 1)
	b, err := Decode(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Debtor.Type() != bill.AddressTypeCombinedElements {
		t.Fatalf("debtor should be combined, got %+v", b.Debtor)
	}
	if b.Debtor.AddressLine1 != "Grosse Marktgasse 28" || b.Debtor.AddressLine2 != "9400 Rorschach" {
		t.Errorf("address lines: got %+v", b.Debtor)
	}
}

func TestDecodeSuperfluousTrailingLine(t *testing.T) {
	if _, err := Decode(sampleText + "\r\n"); err != nil {
		t.Fatalf("one trailing empty line should be tolerated: %v", err)
	}
	_, err := Decode(sampleText + "\r\n.")
	assertSingleError(t, err, bill.FieldQRType, bill.KeyDataStructureInvalid)
	_, err = Decode(sampleText + "\r\n\r\n")
	assertSingleError(t, err, bill.FieldQRType, bill.KeyDataStructureInvalid)
}

func TestDecodeStructuralErrors(t *testing.T) {
	_, err := Decode("SPC\r\n0200\r\n1")
	assertSingleError(t, err, bill.FieldQRType, bill.KeyDataStructureInvalid)

	_, err = Decode(strings.Replace(sampleText, "SPC", "SPX", 1))
	assertSingleError(t, err, bill.FieldQRType, bill.KeyDataStructureInvalid)

	_, err = Decode(strings.Replace(sampleText, "0200", "0300", 1))
	assertSingleError(t, err, bill.FieldVersion, bill.KeyVersionUnsupported)

	_, err = Decode(strings.Replace(sampleText, "\r\n1\r\n", "\r\n2\r\n", 1))
	assertSingleError(t, err, bill.FieldCodingType, bill.KeyCodingTypeUnsupported)

	_, err = Decode(strings.Replace(sampleText, "EPD", "E_P", 1))
	assertSingleError(t, err, bill.FieldTrailer, bill.KeyDataStructureInvalid)

	_, err = Decode(strings.Replace(sampleText, "1949.75", "1949,75", 1))
	assertSingleError(t, err, bill.FieldAmount, bill.KeyNumberInvalid)
}

func TestDecodeIgnoresMinorVersion(t *testing.T) {
	b, err := Decode(strings.Replace(sampleText, "0200", "0201", 1))
	if err != nil {
		t.Fatalf("minor version should be accepted: %v", err)
	}
	if b.Version != bill.V2_0 {
		t.Error("minor versions should decode as V2_0")
	}
}

func TestRoundTrip(t *testing.T) {
	original := validate.Validate(sampleBill()).CleanedBill
	// scheme names are not part of the encoded text
	for i := range original.AlternativeSchemes {
		original.AlternativeSchemes[i].Name = ""
	}

	text := EncodeCleaned(original)
	decoded, err := Decode(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cleaned := validate.Validate(decoded).CleanedBill
	if !original.Equal(cleaned) {
		t.Fatalf("round trip changed the bill:\noriginal: %+v\ndecoded:  %+v", original, cleaned)
	}
}

func TestRoundTripFieldCombinations(t *testing.T) {
	base := func() *bill.Bill { return sampleBill() }

	variants := map[string]func(*bill.Bill){
		"no debtor": func(b *bill.Bill) { b.Debtor = nil },
		"no amount": func(b *bill.Bill) { b.Amount = nil },
		"creditor reference": func(b *bill.Bill) {
			b.Account = "CH5800791123000889012"
			b.Reference = "RF18539007547034"
		},
		"no reference": func(b *bill.Bill) {
			b.Account = "CH5800791123000889012"
			b.Reference = ""
		},
		"no additional info": func(b *bill.Bill) {
			b.UnstructuredMessage = ""
			b.BillInformation = ""
			b.AlternativeSchemes = nil
		},
		"one scheme": func(b *bill.Bill) { b.AlternativeSchemes = b.AlternativeSchemes[:1] },
		"combined address": func(b *bill.Bill) {
			b.Debtor = &bill.Address{
				Name: "Pia Rutschmann", AddressLine1: "Marktgasse 28",
				AddressLine2: "9400 Rorschach", CountryCode: "CH",
			}
		},
	}

	for name, modify := range variants {
		b := base()
		modify(b)
		for i := range b.AlternativeSchemes {
			b.AlternativeSchemes[i].Name = ""
		}

		result := validate.Validate(b)
		if result.HasErrors() {
			t.Fatalf("%s: fixture invalid: %+v", name, result.Messages)
		}
		original := result.CleanedBill

		decoded, err := Decode(EncodeCleaned(original))
		if err != nil {
			t.Fatalf("%s: decode failed: %v", name, err)
		}
		cleaned := validate.Validate(decoded).CleanedBill
		if !original.Equal(cleaned) {
			t.Errorf("%s: round trip changed the bill:\noriginal: %+v\ndecoded:  %+v", name, original, cleaned)
		}
	}
}

func TestRoundTripLegacyVersion(t *testing.T) {
	due := time.Date(2020, time.July, 12, 0, 0, 0, 0, time.UTC)
	b := sampleBill()
	b.Version = bill.V1_0
	b.DueDate = &due
	b.BillInformation = ""
	b.AlternativeSchemes = nil
	b.UltimateCreditor = &bill.Address{
		Name: "Schreinerei Habegger & Söhne", Street: "Uetlibergstrasse", HouseNo: "138",
		PostalCode: "8045", Town: "Zürich", CountryCode: "CH",
	}

	result := validate.Validate(b)
	if result.HasErrors() {
		t.Fatalf("fixture invalid: %+v", result.Messages)
	}
	original := result.CleanedBill

	text := EncodeCleaned(original)
	lines := strings.Split(text, "\r\n")
	if len(lines) != 28 {
		t.Fatalf("got %d lines, want 28", len(lines))
	}
	if lines[1] != "0100" {
		t.Errorf("version line: got %q", lines[1])
	}
	if lines[18] != "2020-07-12" {
		t.Errorf("due date line: got %q", lines[18])
	}

	decoded, err := Decode(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.Version != bill.V1_0 {
		t.Error("version should be V1_0")
	}
	if decoded.UltimateCreditor == nil || decoded.UltimateCreditor.Name != "Schreinerei Habegger & Söhne" {
		t.Errorf("ultimate creditor: got %+v", decoded.UltimateCreditor)
	}
	cleaned := validate.Validate(decoded).CleanedBill
	if !original.Equal(cleaned) {
		t.Fatalf("round trip changed the bill:\noriginal: %+v\ndecoded:  %+v", original, cleaned)
	}
}

func TestDecodeLegacyLineCount(t *testing.T) {
	b := sampleBill()
	b.Version = bill.V1_0
	b.BillInformation = ""
	text, err := Encode(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(text, "\r\n")
	if len(lines) != 30 {
		t.Fatalf("got %d lines, want 30", len(lines))
	}

	decoded, err := Decode(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decoded.AlternativeSchemes) != 2 {
		t.Errorf("got %d schemes, want 2", len(decoded.AlternativeSchemes))
	}
}
