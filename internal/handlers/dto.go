package handlers

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/diewo77/qrbill/bill"
	"github.com/diewo77/qrbill/charset"
)

// BillDTO is the JSON representation of a QR bill.
type BillDTO struct {
	Version             string                 `json:"version,omitempty"`
	Amount              *float64               `json:"amount,omitempty"`
	Currency            string                 `json:"currency,omitempty"`
	Account             string                 `json:"account,omitempty"`
	Creditor            *AddressDTO            `json:"creditor,omitempty"`
	UltimateCreditor    *AddressDTO            `json:"ultimateCreditor,omitempty"`
	Debtor              *AddressDTO            `json:"debtor,omitempty"`
	Reference           string                 `json:"reference,omitempty"`
	UnstructuredMessage string                 `json:"unstructuredMessage,omitempty"`
	BillInformation     string                 `json:"billInformation,omitempty"`
	AlternativeSchemes  []AlternativeSchemeDTO `json:"alternativeSchemes,omitempty"`
	DueDate             string                 `json:"dueDate,omitempty"`
	Format              *FormatDTO             `json:"format,omitempty"`
}

type AddressDTO struct {
	Name         string `json:"name,omitempty"`
	AddressLine1 string `json:"addressLine1,omitempty"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	Street       string `json:"street,omitempty"`
	HouseNo      string `json:"houseNo,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	Town         string `json:"town,omitempty"`
	CountryCode  string `json:"countryCode,omitempty"`
}

type AlternativeSchemeDTO struct {
	Name        string `json:"name,omitempty"`
	Instruction string `json:"instruction,omitempty"`
}

type FormatDTO struct {
	Language     string `json:"language,omitempty"`
	CharacterSet string `json:"characterSet,omitempty"`
}

type ValidationMessageDTO struct {
	Type              string   `json:"type"`
	Field             string   `json:"field"`
	MessageKey        string   `json:"messageKey"`
	MessageParameters []string `json:"messageParameters,omitempty"`
	Message           string   `json:"message,omitempty"`
}

// ValidationResponse is the result of the validate and decode endpoints.
// QRCodeText and BillID are only set when the bill has no errors.
type ValidationResponse struct {
	Valid              bool                   `json:"valid"`
	ValidationMessages []ValidationMessageDTO `json:"validationMessages,omitempty"`
	ValidatedBill      *BillDTO               `json:"validatedBill,omitempty"`
	QRCodeText         string                 `json:"qrCodeText,omitempty"`
	BillID             string                 `json:"billID,omitempty"`
}

func billFromDTO(dto *BillDTO) (*bill.Bill, error) {
	b := &bill.Bill{
		Currency:            dto.Currency,
		Account:             dto.Account,
		Creditor:            addressFromDTO(dto.Creditor),
		UltimateCreditor:    addressFromDTO(dto.UltimateCreditor),
		Debtor:              addressFromDTO(dto.Debtor),
		Reference:           dto.Reference,
		UnstructuredMessage: dto.UnstructuredMessage,
		BillInformation:     dto.BillInformation,
	}

	switch dto.Version {
	case "", "V2_0":
		b.Version = bill.V2_0
	case "V1_0":
		b.Version = bill.V1_0
	default:
		return nil, fmt.Errorf("unknown version %q", dto.Version)
	}

	if dto.Amount != nil {
		amount := decimal.NewFromFloat(*dto.Amount)
		b.Amount = &amount
	}
	if dto.DueDate != "" {
		date, err := time.Parse("2006-01-02", dto.DueDate)
		if err != nil {
			return nil, fmt.Errorf("invalid due date %q", dto.DueDate)
		}
		b.DueDate = &date
	}
	for _, s := range dto.AlternativeSchemes {
		b.AlternativeSchemes = append(b.AlternativeSchemes,
			bill.AlternativeScheme{Name: s.Name, Instruction: s.Instruction})
	}

	format, err := formatFromDTO(dto.Format)
	if err != nil {
		return nil, err
	}
	b.Format = format

	return b, nil
}

func billToDTO(b *bill.Bill) *BillDTO {
	if b == nil {
		return nil
	}
	dto := &BillDTO{
		Version:             "V2_0",
		Currency:            b.Currency,
		Account:             b.Account,
		Creditor:            addressToDTO(b.Creditor),
		UltimateCreditor:    addressToDTO(b.UltimateCreditor),
		Debtor:              addressToDTO(b.Debtor),
		Reference:           b.Reference,
		UnstructuredMessage: b.UnstructuredMessage,
		BillInformation:     b.BillInformation,
		Format:              formatToDTO(b.Format),
	}
	if b.Version == bill.V1_0 {
		dto.Version = "V1_0"
	}
	if b.Amount != nil {
		amount := b.Amount.InexactFloat64()
		dto.Amount = &amount
	}
	if b.DueDate != nil {
		dto.DueDate = b.DueDate.Format("2006-01-02")
	}
	for _, s := range b.AlternativeSchemes {
		dto.AlternativeSchemes = append(dto.AlternativeSchemes,
			AlternativeSchemeDTO{Name: s.Name, Instruction: s.Instruction})
	}
	return dto
}

func addressFromDTO(dto *AddressDTO) *bill.Address {
	if dto == nil {
		return nil
	}
	return &bill.Address{
		Name:         dto.Name,
		AddressLine1: dto.AddressLine1,
		AddressLine2: dto.AddressLine2,
		Street:       dto.Street,
		HouseNo:      dto.HouseNo,
		PostalCode:   dto.PostalCode,
		Town:         dto.Town,
		CountryCode:  dto.CountryCode,
	}
}

func addressToDTO(a *bill.Address) *AddressDTO {
	if a == nil {
		return nil
	}
	return &AddressDTO{
		Name:         a.Name,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		Street:       a.Street,
		HouseNo:      a.HouseNo,
		PostalCode:   a.PostalCode,
		Town:         a.Town,
		CountryCode:  a.CountryCode,
	}
}

func formatFromDTO(dto *FormatDTO) (bill.Format, error) {
	format := bill.DefaultFormat()
	if dto == nil {
		return format, nil
	}
	switch dto.Language {
	case "":
	case "en":
		format.Language = bill.LanguageEN
	case "de":
		format.Language = bill.LanguageDE
	case "fr":
		format.Language = bill.LanguageFR
	case "it":
		format.Language = bill.LanguageIT
	default:
		return format, fmt.Errorf("unknown language %q", dto.Language)
	}
	switch dto.CharacterSet {
	case "":
	case "latin-1-subset":
		format.CharacterSet = charset.Latin1Subset
	case "extended-latin":
		format.CharacterSet = charset.ExtendedLatin
	case "full-unicode":
		format.CharacterSet = charset.FullUnicode
	default:
		return format, fmt.Errorf("unknown character set %q", dto.CharacterSet)
	}
	return format, nil
}

func formatToDTO(format bill.Format) *FormatDTO {
	dto := &FormatDTO{}
	switch format.Language {
	case bill.LanguageEN:
		dto.Language = "en"
	case bill.LanguageDE:
		dto.Language = "de"
	case bill.LanguageFR:
		dto.Language = "fr"
	case bill.LanguageIT:
		dto.Language = "it"
	}
	switch format.CharacterSet {
	case charset.Latin1Subset:
		dto.CharacterSet = "latin-1-subset"
	case charset.ExtendedLatin:
		dto.CharacterSet = "extended-latin"
	case charset.FullUnicode:
		dto.CharacterSet = "full-unicode"
	}
	return dto
}
