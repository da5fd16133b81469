// Package seed generates the initial content for all four
// collections. The shape is fixed (50 directors, 50 plays, a 10x10
// hall, 60 tickets on distinct seats); the individual values are
// randomized on every fresh run and are not a compatibility surface.
package seed

import (
	"fmt"
	"math/rand"

	"github.com/iliyamo/theater-dashboard/internal/model"
)

const (
	hallRows    = 10
	hallColumns = 10
	ticketCount = 60

	basePrice    = 40000
	rowIncrement = 10000
)

var directorNames = []string{
	"Otabek Alimov", "Dilshod Karimov", "Shahnoza Yoqubova", "Jamshid Qodirov", "Malika Rasulova",
	"Sherzod Bekmurodov", "Lola Mamatova", "Bahodir Usmonov", "Sevinch Toxtayeva", "Javlon Sodiqov",
	"Dilorom Yoldosheva", "Rustam Xolmatov", "Nilufar Tursunova", "Habibullo Sobirov", "Umida Mirzayeva",
	"Anvar Jorayev", "Ziyoda Orifova", "Farrux Zokirov", "Munisa Rizaeva", "Sardor Rahimxon",
	"Rayhon Ganiyeva", "Ulugbek Rahmatullayev", "Shohruh Yoldoshev", "Shahzoda Azimova", "Lola Yoldosheva",
	"Ozodbek Nazarbekov", "Yulduz Usmonova", "Sherali Jorayev", "Gulsanam Mamazoitova", "Alisher Fayz",
	"Zohirshoh Jorayev", "Dildora Niyozova", "Olmas Olloberganov", "Tohir Sodiqov", "Davron Ergashev",
	"Sevara Nazarxon", "Nasiba Abdullayeva", "Kumush Razzoqova", "Gulomjon Yoqubov", "Mahmud Namozov",
	"Abdurashid Yoldoshev", "Botir Qodirov", "Ravshan Komilov", "Xojiakbar Hamidov", "Ozoda Nursaidova",
	"Jasur Umirov", "Shoxruz Avazov", "Kamola Saidova", "Temur Islomov", "Feruza Bekchanova",
}

var playTitles = []string{
	"Love and Loyalty", "Dark Nights", "Starlit Evenings", "Days Gone By", "Sorrow of the Heart",
	"Song of Freedom", "My Confidant", "Tears", "Secrets of the Heart", "A Love Story",
	"Heart of a Warrior", "Motherland", "Scenes from a Life", "The Inheritance", "Toward the Dream",
	"Moths of the Night", "When Spring Comes", "Autumn Sonata", "A Winter's Tale", "Summer Adventure",
	"Game of Fate", "Address of Happiness", "World of Regrets", "The Golden Wall", "The Iron Lady",
	"Revolt of the Brides", "Parvona", "Maysara's Scheme", "The Rich Man and His Servant", "Alpomish",
	"Gorogli", "Layli and Majnun", "Farhod and Shirin", "Tohir and Zuhra", "Hamsa",
	"Boburnoma", "Days Gone By Revisited", "Scorpion from the Altar", "Riding the Yellow Giant", "Silence",
	"The Whirlpool", "Horizon", "The Orchard", "The Mischievous Boy", "Golden Valley",
	"Black Pearl", "The White Ship", "Judgement Day", "Ship at the Shore", "The Long Wait",
}

var buyerNames = []string{
	"Ali Valiyev", "Dilnoza Karimova", "Rustam Xolmatov", "Shahnoza Toxtayeva", "Bahodir Usmonov",
	"Lola Mamatova", "Javlon Sodiqov", "Umida Mirzayeva", "Sevinch Yoqubova", "Jamshid Qodirov",
	"Sardor Orifov", "Malika Nabieva", "Bobur Gulomov", "Diyorbek Toshmatov", "Asal Shodieva",
	"Zarina Nizomiddinova", "Alisher Uzoqov", "Adiz Rajabov", "Ulugbek Qodirov", "Yigitali Mamajonov",
}

// Directors generates the initial director collection, one record per
// name with randomized experience and birth year.
func Directors() []model.Director {
	out := make([]model.Director, 0, len(directorNames))
	for i, name := range directorNames {
		out = append(out, model.Director{
			ID:                int64(i + 1),
			Name:              name,
			YearsOfExperience: rand.Intn(30) + 5,
			BirthYear:         1960 + rand.Intn(35),
		})
	}
	return out
}

// Plays generates the initial repertoire. Directors are assigned
// round-robin so every play resolves to an existing director.
func Plays(directorCount int) []model.Play {
	out := make([]model.Play, 0, len(playTitles))
	for i, title := range playTitles {
		out = append(out, model.Play{
			ID:             int64(i + 1),
			Title:          title,
			Genre:          model.Genres[rand.Intn(len(model.Genres))],
			ProductionYear: 2010 + rand.Intn(14),
			DirectorID:     int64(i%directorCount + 1),
		})
	}
	return out
}

// Seats generates the fixed 10x10 hall. Price grows with the row:
// base price plus a per-row increment.
func Seats() []model.Seat {
	out := make([]model.Seat, 0, hallRows*hallColumns)
	for i := 0; i < hallRows*hallColumns; i++ {
		row := i/hallColumns + 1
		out = append(out, model.Seat{
			ID:     int64(i + 1),
			Row:    row,
			Number: i%hallColumns + 1,
			Price:  int64(basePrice + row*rowIncrement),
		})
	}
	return out
}

// Tickets generates the initial sales. Each ticket takes a distinct
// seat so the seed respects the one-ticket-per-seat invariant.
func Tickets(playCount, seatCount int) []model.Ticket {
	used := make(map[int64]struct{}, ticketCount)
	out := make([]model.Ticket, 0, ticketCount)
	for i := 0; i < ticketCount; i++ {
		seatID := int64(rand.Intn(seatCount) + 1)
		for {
			if _, taken := used[seatID]; !taken {
				break
			}
			seatID = int64(rand.Intn(seatCount) + 1)
		}
		used[seatID] = struct{}{}
		out = append(out, model.Ticket{
			ID:        int64(i + 1),
			PlayID:    int64(rand.Intn(playCount) + 1),
			SeatID:    seatID,
			BuyerName: buyerNames[rand.Intn(len(buyerNames))],
			Date:      fmt.Sprintf("2024-05-%02d", i%28+1),
		})
	}
	return out
}
