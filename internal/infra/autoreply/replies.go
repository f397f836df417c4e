package autoreply

import "antigaspi/internal/domain/entity"

// demoUsers are the canned counterparts replies and interest messages are
// attributed to.
var demoUsers = []entity.DemoUser{
	{
		Name:      "Sarah Benali",
		AvatarURL: "https://images.unsplash.com/photo-1494790108755-2616b612b1e1?w=100&h=100&fit=crop&crop=face",
		City:      "Alger",
	},
	{
		Name:      "Ahmed Khelil",
		AvatarURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop&crop=face",
		City:      "Oran",
	},
	{
		Name:      "Amina Djebbar",
		AvatarURL: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop&crop=face",
		City:      "Constantine",
	},
	{
		Name:      "Youcef Meziane",
		AvatarURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face",
		City:      "Annaba",
	},
}

// replyRule binds trigger keywords to a bucket of canned responses. Rules
// are evaluated in order; the first keyword hit wins.
type replyRule struct {
	keywords  []string
	responses []string
}

// replyRules is the ordered keyword table: greeting, availability, meetup,
// condition, location, thanks. Anything else falls back to defaultReplies.
var replyRules = []replyRule{
	{
		keywords: []string{"bonjour", "salut", "bonsoir"},
		responses: []string{
			"Bonjour ! Comment allez-vous ?",
			"Salut ! Merci de m'avoir contacté.",
			"Bonsoir ! Ravi de vous entendre.",
		},
	},
	{
		keywords: []string{"disponible", "encore là", "réservé"},
		responses: []string{
			"Oui, le produit est encore disponible ! Quand souhaitez-vous le récupérer ?",
			"Parfait ! Il est toujours là. Vous pouvez passer quand vous voulez.",
			"Bien sûr, il vous attend ! À quelle heure vous arrange ?",
		},
	},
	{
		keywords: []string{"quand", "heure", "rendez-vous", "récupérer"},
		responses: []string{
			"On peut se voir demain après-midi si ça vous va ?",
			"Je suis libre ce soir vers 18h, ça marche pour vous ?",
			"Que diriez-vous de nous retrouver demain matin ?",
		},
	},
	{
		keywords: []string{"état", "qualité", "frais", "bon"},
		responses: []string{
			"Le produit est en très bon état, ne vous inquiétez pas.",
			"Il est parfaitement conservé et encore frais.",
			"Tout va bien, il est comme neuf !",
		},
	},
	{
		keywords: []string{"où", "adresse", "lieu", "endroit"},
		responses: []string{
			"Je suis proche du centre-ville, c'est facile d'accès.",
			"L'adresse est pratique, pas de souci pour se garer.",
			"C'est à 5 minutes de la station de métro.",
		},
	},
	{
		keywords: []string{"merci", "super", "parfait"},
		responses: []string{
			"Merci beaucoup pour votre intérêt !",
			"C'est très gentil de votre part !",
			"Je vous remercie, c'est formidable !",
		},
	},
}

var defaultReplies = []string{
	"Parfait ! N'hésitez pas si vous avez d'autres questions.",
	"Très bien ! Je reste à votre disposition.",
	"D'accord ! Faites-moi savoir si vous avez besoin d'autre chose.",
	"Entendu ! On se tient au courant alors.",
	"Ça marche ! À bientôt j'espère.",
}

// interestTemplates announce interest in a listing; %s is the listing name.
var interestTemplates = []string{
	"Bonjour ! Je suis intéressé(e) par votre %s. Est-il encore disponible ?",
	"Salut ! Votre %s m'intéresse beaucoup. Peut-on se voir pour le récupérer ?",
	"Bonsoir ! Je voudrais savoir si votre %s est toujours libre ?",
	"Hello ! Votre annonce pour %s m'a attiré. C'est encore dispo ?",
}
