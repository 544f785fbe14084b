package i18n

import "testing"

func TestDetectLanguage(t *testing.T) {
	if DetectLanguage("en-US,en;q=0.9") != "en" {
		t.Fatalf("expected en")
	}
	if DetectLanguage("DE-ch") != "de" {
		t.Fatalf("expected de for DE-ch")
	}
	if DetectLanguage("es-ES,it;q=0.8") != "it" {
		t.Fatalf("expected it for unsupported first choice")
	}
	if DetectLanguage("") != "en" {
		t.Fatalf("expected default en")
	}
}

func TestTranslations(t *testing.T) {
	if T("en", "field_value_missing") != "Field must not be empty" {
		t.Fatalf("unexpected en translation")
	}
	if T("de", "field_value_missing") != "Das Feld darf nicht leer sein" {
		t.Fatalf("unexpected de translation")
	}
	// unknown key -> fallback to key
	if T("en", "__nope__") != "__nope__" {
		t.Fatalf("expected fallback to key")
	}
	// unknown language -> fallback to en translation
	if T("es", "field_value_missing") != "Field must not be empty" {
		t.Fatalf("expected en fallback for es")
	}
}

func TestCatalogsComplete(t *testing.T) {
	for lang, catalog := range catalogs {
		if lang == "en" {
			continue
		}
		for key := range catalogs["en"] {
			if _, ok := catalog[key]; !ok {
				t.Errorf("catalog %s misses key %s", lang, key)
			}
		}
	}
}

func TestLocalize(t *testing.T) {
	got := Localize("en", "field_value_clipped", []string{"70"})
	want := "The value for this field was clipped to not exceed the maximum length of 70 characters"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
