// Package pages holds the static content of the public site.
package pages

const StudioName = "35 Frames Photography"

// Service is one service landing page. Its gallery shows the portfolio
// images of Category.
type Service struct {
	Slug          string
	Name          string
	Category      string
	Title         string
	Subtitle      string
	Description   string
	CoverageItems []string
}

var Services = []Service{
	{
		Slug:     "wedding-photography",
		Name:     "Wedding Photography",
		Category: "Wedding",
		Title:    "Luxury Candid Wedding Photography",
		Subtitle: "Capturing Every Precious Moment of Your Special Day",
		Description: "At 35 Frames, we believe every wedding tells a unique story. Our candid wedding photography " +
			"captures the raw emotions, stolen glances, and joyful celebrations that make your day truly special. " +
			"From the nervous excitement of getting ready to the heartfelt vows and exuberant dancing, we document " +
			"every precious moment with artistic precision and emotional depth.",
		CoverageItems: []string{
			"Full Day Coverage", "Candid Photography", "Traditional Portraits",
			"Drone Shots", "Same Day Edits", "Premium Photo Album",
			"All HD Edited Photos", "Online Gallery Access", "Multiple Photographers",
		},
	},
	{
		Slug:     "pre-wedding",
		Name:     "Pre-Wedding Photography",
		Category: "Pre-Wedding",
		Title:    "Luxury Pre-Wedding Shoot",
		Subtitle: "Celebrate Your Love Story Before the Big Day",
		Description: "Your pre-wedding shoot is a celebration of your journey together. Whether you dream of a " +
			"romantic beach sunset, a picturesque mountain backdrop, or an urban adventure, we create stunning " +
			"imagery that captures the essence of your relationship.",
		CoverageItems: []string{
			"Location Scouting", "Outfit Consultation", "Multiple Locations",
			"Drone Photography", "Cinematic Shots", "Romantic Portraits",
			"All HD Edited Photos", "Online Gallery Access", "Printed Photo Book",
		},
	},
	{
		Slug:     "wedding-films",
		Name:     "Wedding Films",
		Category: "Wedding",
		Title:    "Cinematic Wedding Films",
		Subtitle: "Your Love Story Told Through Motion Pictures",
		Description: "A photograph captures a moment, but a film captures the emotion, the laughter, the tears, " +
			"and the music of your wedding day. Our cinematic wedding films combine stunning visuals, " +
			"professional audio, and thoughtful editing to create a timeless keepsake.",
		CoverageItems: []string{
			"Cinematic Storytelling", "4K Ultra HD Quality", "Aerial Drone Footage",
			"Professional Audio", "Highlight Reel", "Full Ceremony Film",
			"Same Day Edit Option", "Background Music Licensed", "Digital Delivery",
		},
	},
	{
		Slug:     "engagement",
		Name:     "Engagement Photography",
		Category: "Engagement",
		Title:    "Premium Engagement, Haldi & Mehendi Photography",
		Subtitle: "Capturing the Colors and Joy of Your Pre-Wedding Celebrations",
		Description: "The celebrations leading up to your wedding are filled with color, tradition, and joy. " +
			"From the vibrant yellows of Haldi to the intricate beauty of Mehendi designs and the energy of " +
			"Sangeet night, these ceremonies deserve to be captured beautifully.",
		CoverageItems: []string{
			"Haldi Ceremony Coverage", "Mehendi Photography", "Sangeet Night Coverage",
			"Engagement Portraits", "Family Group Photos", "Candid Moments",
			"All HD Edited Photos", "Online Gallery Access", "Quick Turnaround",
		},
	},
	{
		Slug:     "candid-photography",
		Name:     "Candid Photography",
		Category: "Candid",
		Title:    "Candid Photography",
		Subtitle: "Capturing Authentic Moments & Real Emotions",
		Description: "Candid photography is all about capturing the real, unscripted moments that make life " +
			"beautiful. Our photographers blend into the background, allowing natural moments to unfold while " +
			"we capture every precious detail that tells your unique story.",
		CoverageItems: []string{
			"Natural Moments Capture", "Documentary Style Photography", "Unposed Authentic Shots",
			"Emotional Storytelling", "Real Expressions", "Lifestyle Photography",
			"All HD Edited Photos", "Online Gallery Access", "Quick Turnaround",
		},
	},
	{
		Slug:     "birthday-photography",
		Name:     "Birthday Photography",
		Category: "Birthday",
		Title:    "Birthday Photography",
		Subtitle: "Celebrating Milestones & Creating Lasting Memories",
		Description: "Birthdays are special milestones that deserve to be captured beautifully. Whether it's your " +
			"little one's first birthday, a themed party, or a grand celebration, we document all the joy, " +
			"laughter, and precious moments.",
		CoverageItems: []string{
			"Kids Birthday Parties", "First Birthday Specials", "Themed Party Coverage",
			"Cake Smash Sessions", "Family Portraits", "Candid Moments",
			"All HD Edited Photos", "Online Gallery Access", "Quick Turnaround",
		},
	},
	{
		Slug:     "couple-portraits",
		Name:     "Couple Portraits",
		Category: "Couple Portraits",
		Title:    "Couple Portraits",
		Subtitle: "Celebrating Love Through Beautiful Imagery",
		Description: "Couple portrait sessions are a wonderful way to celebrate your relationship, whether you're " +
			"newly in love or celebrating decades together. From scenic outdoor locations to intimate indoor " +
			"settings, we create portraits that tell your love story.",
		CoverageItems: []string{
			"Romantic Couple Shoots", "Anniversary Photography", "Location-based Sessions",
			"Outdoor & Indoor Portraits", "Creative Concepts", "Lifestyle Photography",
			"All HD Edited Photos", "Online Gallery Access", "Printed Photo Book",
		},
	},
	{
		Slug:     "naming-ceremony",
		Name:     "Naming Ceremony",
		Category: "Naming Ceremony",
		Title:    "Naming Ceremony Photography",
		Subtitle: "Capturing the Sacred Beginning of Your Little One's Journey",
		Description: "The naming ceremony is a beautiful tradition that marks the beginning of your child's " +
			"identity. Our photographers capture every blessing, every ritual, and every loving glance exchanged " +
			"during this special ceremony.",
		CoverageItems: []string{
			"Traditional Ceremony Coverage", "Ritual Documentation", "Family Portraits",
			"Baby Close-ups", "Candid Moments", "Guest Photography",
			"All HD Edited Photos", "Online Gallery Access", "Quick Turnaround",
		},
	},
}

func ServiceBySlug(slug string) (Service, bool) {
	for _, s := range Services {
		if s.Slug == slug {
			return s, true
		}
	}
	return Service{}, false
}
