package model

import "strings"

// ProfileInfo is the descriptive content attached to a primary profile label.
// The label vocabulary is owned by the upstream API and may evolve
// independently, so lookups must degrade to a generic entry instead of
// failing on an unrecognized label.
type ProfileInfo struct {
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Traits      []string `json:"traits"`
}

var discProfiles = map[string]ProfileInfo{
	"dominante": {
		Label:       "Dominante",
		Description: "Você é uma pessoa focada em resultados, decisiva e orientada para metas. Gosta de assumir responsabilidades e prefere ambientes desafiadores.",
		Traits: []string{
			"Orientado para resultados",
			"Assumir controle",
			"Tomar decisões rápidas",
			"Aceitar desafios",
		},
	},
	"influente": {
		Label:       "Influente",
		Description: "Você é uma pessoa comunicativa, entusiástica e sociável. Inspira e motiva as pessoas ao seu redor e se destaca em ambientes colaborativos.",
		Traits: []string{
			"Comunicativo e persuasivo",
			"Entusiasmo contagiante",
			"Facilidade para criar conexões",
			"Otimismo diante de mudanças",
		},
	},
	"estável": {
		Label:       "Estável",
		Description: "Você é uma pessoa paciente, leal e confiável. Valoriza a harmonia, prefere rotinas previsíveis e é um excelente ouvinte.",
		Traits: []string{
			"Paciência e constância",
			"Lealdade ao grupo",
			"Boa escuta",
			"Busca por harmonia",
		},
	},
	"consciente": {
		Label:       "Consciente",
		Description: "Você é uma pessoa analítica, precisa e orientada por qualidade. Prefere decisões fundamentadas em dados e preza por padrões elevados.",
		Traits: []string{
			"Atenção aos detalhes",
			"Raciocínio analítico",
			"Compromisso com qualidade",
			"Planejamento cuidadoso",
		},
	},
}

var loveProfiles = map[string]ProfileInfo{
	"palavras de afirmação": {
		Label:       "Palavras de Afirmação",
		Description: "Você se sente mais amado quando recebe palavras encorajadoras, elogios sinceros e expressões verbais de carinho.",
		Traits: []string{
			"Valoriza elogios sinceros",
			"Aprecia palavras de encorajamento",
			"Gosta de ouvir \"eu te amo\"",
			"Se motiva com reconhecimento verbal",
		},
	},
	"atos de serviço": {
		Label:       "Atos de Serviço",
		Description: "Você se sente amado quando as pessoas demonstram cuidado através de ações concretas, como ajudar em tarefas e resolver problemas por você.",
		Traits: []string{
			"Valoriza ajuda prática",
			"Percebe amor em gestos concretos",
			"Gosta de ser surpreendido com favores",
			"Demonstra carinho fazendo coisas pelos outros",
		},
	},
	"presentes": {
		Label:       "Presentes",
		Description: "Você se sente amado ao receber presentes que demonstram que alguém pensou em você, independentemente do valor material.",
		Traits: []string{
			"Valoriza lembranças significativas",
			"Guarda presentes com carinho",
			"Percebe intenção por trás do gesto",
			"Gosta de presentear os outros",
		},
	},
	"tempo de qualidade": {
		Label:       "Tempo de Qualidade",
		Description: "Você se sente amado quando recebe atenção exclusiva e compartilha momentos significativos com quem ama.",
		Traits: []string{
			"Valoriza atenção exclusiva",
			"Aprecia conversas profundas",
			"Gosta de atividades em conjunto",
			"Prefere presença a presentes",
		},
	},
	"toque físico": {
		Label:       "Toque Físico",
		Description: "Você se sente amado através do contato físico: abraços, carinhos e proximidade transmitem segurança e afeto para você.",
		Traits: []string{
			"Valoriza abraços e carinho",
			"Se conforta com proximidade física",
			"Demonstra afeto com toques",
			"Sente segurança no contato",
		},
	},
}

// LookupProfile resolves the descriptive content for a primary profile label.
// Matching is case-insensitive on the exact label; anything unrecognized gets
// the generic fallback with an empty trait list.
func LookupProfile(testType TestType, label string) ProfileInfo {
	catalog := discProfiles
	if testType == TestTypeLove {
		catalog = loveProfiles
	}
	if info, ok := catalog[strings.ToLower(strings.TrimSpace(label))]; ok {
		return info
	}
	return ProfileInfo{
		Label:       label,
		Description: "Seu teste foi concluído com sucesso. Confira a distribuição de pontuação abaixo para conhecer melhor o seu perfil.",
		Traits:      []string{},
	}
}

type badgeRule struct {
	fragment string
	color    string
}

// Badge palettes are keyed by substring so small label variations upstream
// ("Perfil Dominante", "DOMINANTE") still resolve to the same color.
var discBadgeRules = []badgeRule{
	{"dominante", "bg-red-500"},
	{"influente", "bg-yellow-500"},
	{"estável", "bg-green-500"},
	{"estavel", "bg-green-500"},
	{"consciente", "bg-blue-500"},
}

var loveBadgeRules = []badgeRule{
	{"palavras", "bg-purple-500"},
	{"atos", "bg-blue-500"},
	{"presentes", "bg-pink-500"},
	{"tempo", "bg-green-500"},
	{"toque", "bg-orange-500"},
}

// BadgeColor picks the badge class for a profile label, falling back to a
// neutral color for labels outside the known palette.
func BadgeColor(testType TestType, label string) string {
	rules := discBadgeRules
	if testType == TestTypeLove {
		rules = loveBadgeRules
	}
	needle := strings.ToLower(label)
	for _, rule := range rules {
		if strings.Contains(needle, rule.fragment) {
			return rule.color
		}
	}
	return "bg-gray-500"
}
