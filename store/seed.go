package store

import (
	"time"

	"github.com/BharathDevanaboina/Linkup/models"
)

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }

func minutesFromNow(mins int) *int64 {
	t := time.Now().Add(time.Duration(mins) * time.Minute).UnixMilli()
	return &t
}

// SamplePosts are the demo signals used when no database is configured.
// Newest-first, covering all four pillars.
func SamplePosts() []models.Post {
	now := time.Now().Unix()
	return []models.Post{
		{
			ID:     "seed-9",
			UserID: "u9",
			User:   models.User{ID: "u9", Name: "Anonymous", Handle: "anonymous", Avatar: ""},
			Category:    models.CategoryAnonymous,
			Title:       "Flash Mob: Silent Disco",
			Description: "Meet at the fountain in 20 mins. Bring headphones. We dance for 10 mins then disperse like nothing happened.",
			Location:    "Central Plaza",
			Price:       "Free",
			Tags:        []string{"Chaos", "Fun"},
			Attendees:   15,
			IsAnonymous: true,
			ExpiresAt:   minutesFromNow(19),
			CreatedAt:   now - 60,
		},
		{
			ID:     "seed-6",
			UserID: "u6",
			User:   models.User{ID: "u6", Name: "Anonymous", Handle: "anonymous", Avatar: ""},
			Category:    models.CategoryAnonymous,
			Title:       "Confession: Looking for unbiased advice",
			Description: "I need to talk to someone completely unconnected to my life. No names, just chat.",
			Location:    "Encrypted Space",
			Price:       "Free",
			Tags:        []string{"Secret", "Advice", "Anonymous"},
			IsAnonymous: true,
			CreatedAt:   now - 300,
		},
		{
			ID:     "seed-11",
			UserID: "u11",
			User:   models.User{ID: "u11", Name: "Neo", Handle: "@theone", Avatar: "https://picsum.photos/200/200?random=11", Rating: 5.0},
			Category:    models.CategoryOthers,
			Title:       "UFO Spotting in Desert",
			Description: "Driving out to the coordinates I found. I need a co-pilot who isn't afraid of abduction. Bring your own tinfoil.",
			Location:    "Mojave Outpost",
			Price:       "Gas Split",
			Tags:        []string{"Aliens", "Adventure", "Weird"},
			Attendees:   1,
			CreatedAt:   now - 600,
		},
		{
			ID:     "seed-5",
			UserID: "u5",
			User:   models.User{ID: "u5", Name: "Jake Paul", Handle: "@jakepaul", Avatar: "https://picsum.photos/200/200?random=5", IsVerified: true, Rating: 4.2},
			Category:     models.CategoryBounty,
			Title:        "FLASH: 10km Run Challenge in 45 mins",
			Description:  "I bet 100 Rs that nobody here can beat my time. Offer expires in 45 minutes.",
			Location:     "City Stadium",
			Reward:       "100 Rs",
			Tags:         []string{"Bounty", "Running", "Bet"},
			Attendees:    5,
			ExpiresAt:    minutesFromNow(45),
			IsHighStakes: true,
			Difficulty:   ptrI(85),
			CreatedAt:    now - 900,
		},
		{
			ID:     "seed-3",
			UserID: "u3",
			User:   models.User{ID: "u3", Name: "Emily Blunt", Handle: "@emilyb", Avatar: "https://picsum.photos/200/200?random=3", Rating: 4.5},
			Category:    models.CategoryService,
			Title:       "Need someone to stand in line for Sneakers",
			Description: "The new drop is happening tomorrow at 6 AM. I need someone to hold my spot for 3 hours.",
			Location:    "Downtown Mall",
			Price:       "$30/hr",
			Tags:        []string{"Task", "Easy Money"},
			CreatedAt:   now - 1800,
		},
		{
			ID:     "seed-8",
			UserID: "u8",
			User:   models.User{ID: "u8", Name: "The Dealer", Handle: "@highstakes", Avatar: "https://picsum.photos/200/200?random=8", IsVerified: true, Rating: 5.0},
			Category:    models.CategorySocial,
			Title:       "Underground Poker Night",
			Description: "High stakes, private location. You must have a reputation score of 4.9+ to unlock the location.",
			Location:    "Secret Location",
			Price:       "$500 Buy-in",
			Tags:        []string{"Exclusive", "Poker", "High Stakes"},
			Attendees:   4,
			MinRating:   ptrF(4.9),
			CreatedAt:   now - 3600,
		},
		{
			ID:     "seed-7",
			UserID: "u7",
			User:   models.User{ID: "u7", Name: "Fit Beast", Handle: "@fit_beast", Avatar: "https://picsum.photos/200/200?random=7", IsVerified: true, Rating: 5.0},
			Category:    models.CategoryBounty,
			Title:       "100 Pushups in 2 Minutes",
			Description: "If you can beat me in a pushup contest, I will give you my spare gym membership for a month.",
			Location:    "Gold's Gym",
			Reward:      "Gym Pass",
			Tags:        []string{"Fitness", "Competition"},
			Attendees:   8,
			Difficulty:  ptrI(60),
			CreatedAt:   now - 3900,
		},
		{
			ID:     "seed-1",
			UserID: "u1",
			User:   models.User{ID: "u1", Name: "Sarah Chen", Handle: "@sarahc", Avatar: "https://picsum.photos/200/200?random=1", IsVerified: true, Rating: 4.9},
			Category:    models.CategoryEvent,
			Title:       "KDrama Dress-up & Watch Party",
			Description: "Hosting a massive KDrama marathon at a rented villa. Looking for 10 more people!",
			Location:    "Beverly Hills Estate, LA",
			Price:       "$50 Entry",
			Tags:        []string{"KDrama", "Cosplay", "Social"},
			Attendees:   12,
			CreatedAt:   now - 7200,
		},
		{
			ID:     "seed-21",
			UserID: "u21",
			User:   models.User{ID: "u21", Name: "Host Master", Handle: "@host_pro", Avatar: "https://picsum.photos/200/200?random=21", IsVerified: true, Rating: 4.6},
			Category:    models.CategoryRental,
			Title:       "Renting my Gaming Basement",
			Description: "Full setup with 5 PCs, PS5, and VR. Available for 12 hours. Perfect for LAN parties.",
			Location:    "North District",
			Price:       "$200/night",
			Tags:        []string{"Rental", "Gaming", "Party"},
			CreatedAt:   now - 10800,
		},
		{
			ID:     "seed-2",
			UserID: "u2",
			User:   models.User{ID: "u2", Name: "Mike Ross", Handle: "@lawyer_mike", Avatar: "https://picsum.photos/200/200?random=2", IsVerified: true, Rating: 4.7},
			Category:    models.CategoryRide,
			Title:       "Roadtrip to Grand Canyon",
			Description: "Leaving this Friday. Have 2 seats open in my SUV. Split gas costs.",
			Location:    "Phoenix -> Grand Canyon",
			Price:       "$40 Gas",
			Tags:        []string{"Travel", "Ride Share"},
			Attendees:   2,
			CreatedAt:   now - 14400,
		},
	}
}
