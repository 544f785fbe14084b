package i18n

var catalogs = map[string]map[string]string{
	"en": {
		"data_structure_invalid":             "QR code text is invalid; it must start with \"SPC\" and consist of 28 to 34 lines of text",
		"version_unsupported":                "Version is not supported",
		"coding_type_unsupported":            "Coding type is not supported",
		"number_invalid":                     "Number is invalid",
		"currency_not_chf_or_eur":            "Currency should be \"CHF\" or \"EUR\"",
		"amount_outside_valid_range":         "Amount should be between 0.01 and 999 999 999.99",
		"account_iban_not_from_ch_or_li":     "Account number should start with \"CH\" or \"LI\"",
		"account_iban_invalid":               "Account number is not a valid IBAN (invalid format or check digits)",
		"ref_invalid":                        "Reference is invalid; it is neither a valid QR reference nor a valid ISO 11649 reference",
		"qr_ref_missing":                     "Mandatory QR reference is missing; it is mandatory for QR-IBANs",
		"cred_ref_invalid_use_for_qr_iban":   "For QR-IBANs, a QR reference is required; an ISO 11649 reference may not be used",
		"qr_ref_invalid_use_for_non_qr_iban": "A QR reference is only allowed for QR-IBANs",
		"field_value_missing":                "Field must not be empty",
		"address_type_conflict":              "Fields for either a structured address or an address with combined elements may be filled but not both",
		"country_code_invalid":               "Country code is invalid; it should consist of two letters",
		"field_value_clipped":                "The value for this field was clipped to not exceed the maximum length of {0} characters",
		"additional_info_too_long":           "The additional information and the structured bill information combined may not exceed {0} characters",
		"replaced_unsupported_characters":    "Unsupported characters have been replaced",
		"alt_scheme_max_exceed":              "No more than two alternative schemes may be used",
		"bill_info_invalid":                  "Structured bill information must start with \"//\" and consist of at least 4 characters",
	},
	"de": {
		"data_structure_invalid":             "Der QR-Code-Text ist ungültig; er muss mit \"SPC\" beginnen und aus 28 bis 34 Textzeilen bestehen",
		"version_unsupported":                "Die Version wird nicht unterstützt",
		"coding_type_unsupported":            "Der Codierungstyp wird nicht unterstützt",
		"number_invalid":                     "Die Zahl ist ungültig",
		"currency_not_chf_or_eur":            "Die Währung muss \"CHF\" oder \"EUR\" sein",
		"amount_outside_valid_range":         "Der Betrag muss zwischen 0.01 und 999 999 999.99 liegen",
		"account_iban_not_from_ch_or_li":     "Die Kontonummer muss mit \"CH\" oder \"LI\" beginnen",
		"account_iban_invalid":               "Die Kontonummer ist keine gültige IBAN (ungültiges Format oder ungültige Prüfziffern)",
		"ref_invalid":                        "Die Referenz ist ungültig; sie ist weder eine gültige QR-Referenz noch eine gültige ISO-11649-Referenz",
		"qr_ref_missing":                     "Die QR-Referenz fehlt; sie ist für QR-IBANs zwingend",
		"cred_ref_invalid_use_for_qr_iban":   "Für QR-IBANs ist eine QR-Referenz erforderlich; eine ISO-11649-Referenz darf nicht verwendet werden",
		"qr_ref_invalid_use_for_non_qr_iban": "Eine QR-Referenz ist nur für QR-IBANs zulässig",
		"field_value_missing":                "Das Feld darf nicht leer sein",
		"address_type_conflict":              "Es dürfen entweder die Felder der strukturierten Adresse oder jene der Adresse mit kombinierten Feldern ausgefüllt werden, nicht beide",
		"country_code_invalid":               "Der Ländercode ist ungültig; er muss aus zwei Buchstaben bestehen",
		"field_value_clipped":                "Der Wert dieses Feldes wurde auf die maximale Länge von {0} Zeichen gekürzt",
		"additional_info_too_long":           "Die zusätzlichen Informationen und die strukturierten Rechnungsinformationen dürfen zusammen {0} Zeichen nicht überschreiten",
		"replaced_unsupported_characters":    "Nicht unterstützte Zeichen wurden ersetzt",
		"alt_scheme_max_exceed":              "Es dürfen höchstens zwei alternative Verfahren verwendet werden",
		"bill_info_invalid":                  "Strukturierte Rechnungsinformationen müssen mit \"//\" beginnen und aus mindestens 4 Zeichen bestehen",
	},
	"fr": {
		"data_structure_invalid":             "Le texte du code QR est invalide; il doit commencer par \"SPC\" et comporter 28 à 34 lignes de texte",
		"version_unsupported":                "La version n'est pas prise en charge",
		"coding_type_unsupported":            "Le type de codage n'est pas pris en charge",
		"number_invalid":                     "Le nombre est invalide",
		"currency_not_chf_or_eur":            "La monnaie doit être \"CHF\" ou \"EUR\"",
		"amount_outside_valid_range":         "Le montant doit être compris entre 0.01 et 999 999 999.99",
		"account_iban_not_from_ch_or_li":     "Le numéro de compte doit commencer par \"CH\" ou \"LI\"",
		"account_iban_invalid":               "Le numéro de compte n'est pas un IBAN valide (format ou chiffres de contrôle invalides)",
		"ref_invalid":                        "La référence est invalide; ce n'est ni une référence QR valide ni une référence ISO 11649 valide",
		"qr_ref_missing":                     "La référence QR est manquante; elle est obligatoire pour les QR-IBAN",
		"cred_ref_invalid_use_for_qr_iban":   "Pour les QR-IBAN, une référence QR est requise; une référence ISO 11649 ne peut pas être utilisée",
		"qr_ref_invalid_use_for_non_qr_iban": "Une référence QR n'est autorisée que pour les QR-IBAN",
		"field_value_missing":                "Le champ ne doit pas être vide",
		"address_type_conflict":              "Les champs de l'adresse structurée ou ceux de l'adresse à éléments combinés peuvent être remplis, mais pas les deux",
		"country_code_invalid":               "Le code pays est invalide; il doit comporter deux lettres",
		"field_value_clipped":                "La valeur de ce champ a été tronquée pour ne pas dépasser la longueur maximale de {0} caractères",
		"additional_info_too_long":           "Les informations supplémentaires et les informations de facture structurées ne doivent pas dépasser ensemble {0} caractères",
		"replaced_unsupported_characters":    "Les caractères non pris en charge ont été remplacés",
		"alt_scheme_max_exceed":              "Au maximum deux procédures alternatives peuvent être utilisées",
		"bill_info_invalid":                  "Les informations de facture structurées doivent commencer par \"//\" et comporter au moins 4 caractères",
	},
	"it": {
		"data_structure_invalid":             "Il testo del codice QR non è valido; deve iniziare con \"SPC\" e comprendere da 28 a 34 righe di testo",
		"version_unsupported":                "La versione non è supportata",
		"coding_type_unsupported":            "Il tipo di codifica non è supportato",
		"number_invalid":                     "Il numero non è valido",
		"currency_not_chf_or_eur":            "La valuta deve essere \"CHF\" o \"EUR\"",
		"amount_outside_valid_range":         "L'importo deve essere compreso tra 0.01 e 999 999 999.99",
		"account_iban_not_from_ch_or_li":     "Il numero di conto deve iniziare con \"CH\" o \"LI\"",
		"account_iban_invalid":               "Il numero di conto non è un IBAN valido (formato o cifre di controllo non validi)",
		"ref_invalid":                        "Il riferimento non è valido; non è né un riferimento QR valido né un riferimento ISO 11649 valido",
		"qr_ref_missing":                     "Manca il riferimento QR; è obbligatorio per i QR-IBAN",
		"cred_ref_invalid_use_for_qr_iban":   "Per i QR-IBAN è richiesto un riferimento QR; non è possibile utilizzare un riferimento ISO 11649",
		"qr_ref_invalid_use_for_non_qr_iban": "Un riferimento QR è consentito solo per i QR-IBAN",
		"field_value_missing":                "Il campo non deve essere vuoto",
		"address_type_conflict":              "Possono essere compilati i campi dell'indirizzo strutturato oppure quelli dell'indirizzo a elementi combinati, ma non entrambi",
		"country_code_invalid":               "Il codice del paese non è valido; deve essere composto da due lettere",
		"field_value_clipped":                "Il valore di questo campo è stato troncato per non superare la lunghezza massima di {0} caratteri",
		"additional_info_too_long":           "Le informazioni supplementari e le informazioni strutturate della fattura non devono superare insieme {0} caratteri",
		"replaced_unsupported_characters":    "I caratteri non supportati sono stati sostituiti",
		"alt_scheme_max_exceed":              "Si possono utilizzare al massimo due procedure alternative",
		"bill_info_invalid":                  "Le informazioni strutturate della fattura devono iniziare con \"//\" e comprendere almeno 4 caratteri",
	},
}
