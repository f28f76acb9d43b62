package models

// localized is implemented by the per-entity translation rows so that the
// lookup policy lives in one place: requested locale first, then the
// configured fallback, then whatever translation exists.
type localized interface {
	LocaleCode() string
}

func pickTranslation[T localized](translations []T, locale, fallback string) (T, bool) {
	var zero T
	for _, t := range translations {
		if t.LocaleCode() == locale {
			return t, true
		}
	}
	for _, t := range translations {
		if t.LocaleCode() == fallback {
			return t, true
		}
	}
	if len(translations) > 0 {
		return translations[0], true
	}
	return zero, false
}
