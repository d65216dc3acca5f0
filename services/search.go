package services

import (
	"sort"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"stayinn/models"
)

// NormalizeInput chuẩn hóa chuỗi: bỏ dấu, lowercase, trim
func NormalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// createMatcher tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Similarity tính độ tương đồng giữa hai chuỗi theo khoảng cách levenshtein
func Similarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

type scoredRoom struct {
	room  models.Room
	score float64
}

// SearchRooms tìm phòng theo tên cho chatbot: bỏ dấu, khớp chuỗi con,
// rồi fuzzy theo closestmatch + levenshtein. Trả tối đa limit phòng,
// điểm cao trước.
func SearchRooms(rooms []models.Room, query string, limit int) []models.Room {
	normalizedQuery := NormalizeInput(query)
	if normalizedQuery == "" || limit <= 0 {
		return nil
	}

	names := make([]string, 0, len(rooms))
	for _, room := range rooms {
		names = append(names, NormalizeInput(room.RoomName))
	}
	closest := createMatcher(names).Closest(normalizedQuery)

	var scored []scoredRoom
	for _, room := range rooms {
		name := NormalizeInput(room.RoomName)
		score := Similarity(normalizedQuery, name)
		if strings.Contains(name, normalizedQuery) || strings.Contains(normalizedQuery, name) {
			score += 1.0
		}
		if name == closest {
			score += 0.5
		}
		if score < 0.4 {
			continue
		}
		scored = append(scored, scoredRoom{room: room, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	results := make([]models.Room, 0, len(scored))
	for _, s := range scored {
		results = append(results, s.room)
	}
	return results
}
