package content

import "strings"

// Kind tags the content a generation call produces.
type Kind string

const (
	KindTitle            Kind = "title"
	KindShortDescription Kind = "short-description"
	KindProductCard      Kind = "product-card"
	KindMetaTags         Kind = "meta-tags"
)

// Kinds lists every content kind.
var Kinds = []Kind{KindTitle, KindShortDescription, KindProductCard, KindMetaTags}

// ParseKind accepts the canonical kind names plus the short CLI aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "title":
		return KindTitle, nil
	case "description", "short-description", "short":
		return KindShortDescription, nil
	case "card", "product-card":
		return KindProductCard, nil
	case "meta", "meta-tags", "seo":
		return KindMetaTags, nil
	}
	return parseEnum(s, Kinds, "content kind")
}

// template renders one sentence skeleton from resolved fields.
type template func(f fields) string

// table maps an enum value to its template. Lookups of unknown keys fall
// back to the entry stored under the zero key.
type table[K ~string] map[K]template

func (t table[K]) pick(k K) template {
	if tpl, ok := t[k]; ok {
		return tpl
	}
	return t[""]
}

// Title templates are keyed by tone.
var titleTemplates = table[Tone]{
	ToneFormal: func(f fields) string {
		return f.brand + " " + f.name + " " + prefixed("- ", f.category) + " " + prefixed("con ", f.mainFeature)
	},
	ToneColloquial: func(f fields) string {
		return "Scopri il Fantastico " + f.name + " di " + f.brand + " " + prefixed("con ", f.mainFeature)
	},
	ToneTechnical: func(f fields) string {
		return f.brand + " " + f.name + ": " + f.category + " " + prefixed("con Tecnologia ", f.mainFeature)
	},
	ToneCreative: func(f fields) string {
		return "Rivoluziona la tua Esperienza con " + f.brand + " " + f.name + " "
	},
	"": func(f fields) string {
		return f.brand + " " + f.name + " - " + f.category
	},
}

// Short-description openings are keyed by tone, then by target where the
// tone distinguishes audiences.
var descriptionOpenings = map[Tone]table[Target]{
	ToneFormal: {
		TargetBusiness: func(f fields) string {
			return or(f.brand, "Il prodotto") + " " + f.name + " è una soluzione " + or(f.category, "professionale") + " progettata per ottimizzare i processi aziendali."
		},
		TargetTechnical: func(f fields) string {
			return or(f.brand, "Il prodotto") + " " + f.name + " rappresenta un'avanzata soluzione " + or(f.category, "tecnologica") + " con specifiche tecniche superiori."
		},
		"": func(f fields) string {
			return or(f.brand, "Il prodotto") + " " + f.name + " è un " + or(f.category, "prodotto") + " di alta qualità che offre prestazioni eccellenti."
		},
	},
	ToneColloquial: {
		TargetCasual: func(f fields) string {
			return "Cerchi un " + or(f.category, "prodotto") + " fantastico? " + or(f.brand, "Questo prodotto") + " " + f.name + " è esattamente ciò che ti serve!"
		},
		"": func(f fields) string {
			return "Scopri " + or(f.brand, "il nostro prodotto") + " " + f.name + ", il " + or(f.category, "prodotto") + " che tutti stanno adorando per la sua semplicità e efficacia."
		},
	},
	ToneTechnical: {
		"": func(f fields) string {
			return or(f.brand, "Il prodotto") + " " + f.name + ": " + or(f.category, "soluzione") + " tecnicamente avanzata con " + f.feature(0, "caratteristiche innovative") + " e " + f.feature(1, "prestazioni ottimizzate") + "."
		},
	},
	ToneCreative: {
		"": func(f fields) string {
			return "Immagina di trasformare la tua esperienza con " + or(f.brand, "un prodotto") + " " + f.name + ", il " + or(f.category, "prodotto") + " che ridefinisce gli standard."
		},
	},
	"": {
		"": func(f fields) string {
			return or(f.brand, "Il prodotto") + " " + f.name + " è un " + or(f.category, "prodotto") + " di qualità superiore."
		},
	},
}

func descriptionOpening(tone Tone, target Target) template {
	byTarget, ok := descriptionOpenings[tone]
	if !ok {
		byTarget = descriptionOpenings[""]
	}
	return byTarget.pick(target)
}

// Closing sentences are keyed by target.
var descriptionClosings = map[Target]string{
	TargetBusiness:  "Ideale per aziende che cercano efficienza e affidabilità.",
	TargetTechnical: "Progettato per utenti esigenti che richiedono prestazioni superiori.",
	TargetCasual:    "Perfetto per un uso quotidiano senza complicazioni.",
	"":              "Soddisfa le esigenze di ogni tipo di utente.",
}

func descriptionClosing(target Target) string {
	if s, ok := descriptionClosings[target]; ok {
		return s
	}
	return descriptionClosings[""]
}

// Product-card titles are keyed by tone.
var cardTitleTemplates = table[Tone]{
	ToneFormal: func(f fields) string {
		return f.brand + " " + f.name + " - " + f.category + " Professionale"
	},
	ToneColloquial: func(f fields) string {
		return "Scopri il Fantastico " + f.brand + " " + f.name + "!"
	},
	ToneTechnical: func(f fields) string {
		return f.brand + " " + f.name + ": " + f.category + " con Specifiche Avanzate"
	},
	ToneCreative: func(f fields) string {
		return "Rivoluziona la tua Esperienza con " + f.brand + " " + f.name
	},
	"": func(f fields) string {
		return f.brand + " " + f.name + " - " + f.category
	},
}

// Product-card intro paragraphs are keyed by tone.
var cardIntroTemplates = table[Tone]{
	ToneFormal: func(f fields) string {
		return "Il " + f.brand + " " + f.name + " rappresenta una soluzione " + f.noun() + " di alta qualità, progettata per soddisfare le esigenze più elevate. Questo prodotto combina prestazioni eccellenti con un design elegante."
	},
	ToneColloquial: func(f fields) string {
		return "Ehi, hai mai desiderato un " + f.noun() + " che faccia davvero la differenza? Il " + f.brand + " " + f.name + " è esattamente quello che stavi cercando! È fantastico, semplice da usare e cambierà il tuo modo di vedere i " + f.noun() + "."
	},
	ToneTechnical: func(f fields) string {
		return "Il " + f.brand + " " + f.name + " è un " + f.noun() + " tecnicamente avanzato che implementa le più recenti innovazioni nel settore. Le specifiche tecniche di questo dispositivo lo posizionano ai vertici della categoria."
	},
	ToneCreative: func(f fields) string {
		return "Immagina di possedere un " + f.noun() + " che non solo soddisfa le tue aspettative, ma le supera. " + f.brand + " " + f.name + " è quella scintilla di magia che trasforma l'ordinario in straordinario."
	},
	"": func(f fields) string {
		return f.brand + " " + f.name + " è un " + f.noun() + " di qualità superiore. Questo prodotto è stato progettato per offrire prestazioni eccellenti e un'esperienza utente ottimale."
	},
}

func cardBenefitsParagraph(f fields) string {
	all := "facilità d'uso e prestazioni elevate"
	if len(f.benefits) > 0 {
		all = strings.Join(f.benefits, ", ")
	}
	return "Questo " + f.noun() + " offre numerosi vantaggi, tra cui " + all + ". Utilizzando " + f.brand + " " + f.name + ", potrai " + f.benefit(0, "migliorare la tua produttività") + " e " + f.benefit(1, "ottenere risultati superiori") + "."
}

func cardTechnicalParagraph(f fields) string {
	var list string
	switch {
	case len(f.specs) > 0:
		parts := make([]string, 0, len(f.specs))
		for _, s := range f.specs {
			parts = append(parts, s.label+": "+s.value)
		}
		list = strings.Join(parts, ", ")
	case len(f.features) > 0:
		list = strings.Join(f.features, ", ")
	default:
		list = "design ergonomico, materiali di alta qualità e tecnologia all'avanguardia"
	}
	return "Dal punto di vista tecnico, " + f.brand + " " + f.name + " si distingue per " + list + ". Queste caratteristiche garantiscono prestazioni superiori in ogni situazione d'uso."
}

func cardFillerParagraph(f fields) string {
	return f.brand + " " + f.name + " continua a ricevere feedback positivi dai clienti che apprezzano la qualità e l'affidabilità di questo " + f.noun() + ". La combinazione di design innovativo e funzionalità avanzate lo rende una scelta eccellente."
}

func cardCallToAction(f fields) string {
	return "Acquista ora " + f.brand + " " + f.name + " e scopri la differenza. Offerta limitata con spedizione gratuita!"
}

// noun is the category, or a generic noun when the product has none.
func (f fields) noun() string {
	return or(f.category, "prodotto")
}

// prefixed returns prefix+s, or "" when s is empty.
func prefixed(prefix, s string) string {
	if s == "" {
		return ""
	}
	return prefix + s
}
