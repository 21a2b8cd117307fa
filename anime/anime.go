// Package anime describes the ANIME command: its amask table and the record built from its replies.
package anime

import (
	"github.com/anisan-cli/anidb/codec"
	"github.com/anisan-cli/anidb/mask"
	"github.com/anisan-cli/anidb/response"
	"github.com/anisan-cli/anidb/route"
	"github.com/samber/mo"
)

// Anime is one ANIME reply line.
// An absent option means the field was not requested. A present zero value
// means it was requested and the server sent it empty.
type Anime struct {
	AID                mo.Option[int]      `json:"aid"`
	Year               mo.Option[string]   `json:"year"`
	Type               mo.Option[string]   `json:"type"`
	RelatedAIDList     mo.Option[[]int]    `json:"related_aid_list"`
	RelatedAIDType     mo.Option[[]int]    `json:"related_aid_type"`
	CategoryList       mo.Option[[]string] `json:"category_list"`
	CategoryWeightList mo.Option[[]int]    `json:"category_weight_list"`

	RomanjiName   mo.Option[string]   `json:"romanji_name"`
	KanjiName     mo.Option[string]   `json:"kanji_name"`
	EnglishName   mo.Option[string]   `json:"english_name"`
	OtherName     mo.Option[string]   `json:"other_name"`
	ShortNameList mo.Option[[]string] `json:"short_name_list"`
	SynonymList   mo.Option[[]string] `json:"synonym_list"`

	Episodes             mo.Option[int]    `json:"episodes"`
	HighestEpisodeNumber mo.Option[int]    `json:"highest_episode_number"`
	SpecialEpCount       mo.Option[int]    `json:"special_ep_count"`
	AirDate              mo.Option[int]    `json:"air_date"`
	EndDate              mo.Option[int]    `json:"end_date"`
	URL                  mo.Option[string] `json:"url"`
	Picname              mo.Option[string] `json:"picname"`
	CategoryIDList       mo.Option[[]int]  `json:"category_id_list"`

	Rating              mo.Option[int]      `json:"rating"`
	VoteCount           mo.Option[int]      `json:"vote_count"`
	TempRating          mo.Option[int]      `json:"temp_rating"`
	TempVoteCount       mo.Option[int]      `json:"temp_vote_count"`
	AverageReviewRating mo.Option[int]      `json:"average_review_rating"`
	ReviewCount         mo.Option[int]      `json:"review_count"`
	AwardList           mo.Option[[]string] `json:"award_list"`
	IsRestricted        mo.Option[bool]     `json:"is_restricted"`

	AnimePlanetID     mo.Option[int]    `json:"animeplanet_id"`
	ANNID             mo.Option[int]    `json:"ann_id"`
	AllCinemaID       mo.Option[int]    `json:"allcinema_id"`
	AnimeNfoID        mo.Option[string] `json:"animenfo_id"`
	DateRecordUpdated mo.Option[int]    `json:"date_record_updated"`

	CharacterIDList     mo.Option[[]int]    `json:"character_id_list"`
	CreatorIDList       mo.Option[[]int]    `json:"creator_id_list"`
	MainCreatorIDList   mo.Option[[]int]    `json:"main_creator_id_list"`
	MainCreatorNameList mo.Option[[]string] `json:"main_creator_name_list"`

	SpecialsCount mo.Option[int] `json:"specials_count"`
	CreditsCount  mo.Option[int] `json:"credits_count"`
	OtherCount    mo.Option[int] `json:"other_count"`
	TrailerCount  mo.Option[int] `json:"trailer_count"`
	ParodyCount   mo.Option[int] `json:"parody_count"`
}

// Name returns the preferred display title: English, then romanji, then kanji.
func (a *Anime) Name() string {
	for _, name := range []mo.Option[string]{a.EnglishName, a.RomanjiName, a.KanjiName} {
		if n := name.OrEmpty(); n != "" {
			return n
		}
	}
	return ""
}

func (a *Anime) String() string {
	return a.Name()
}

// Build creates an Anime from routed amask values.
func Build(v route.Values) *Anime {
	return &Anime{
		AID:                v.Int(AID),
		Year:               v.String(Year),
		Type:               v.String(Type),
		RelatedAIDList:     v.IntList(RelatedAIDList),
		RelatedAIDType:     v.IntList(RelatedAIDType),
		CategoryList:       v.List(CategoryList),
		CategoryWeightList: v.IntList(CategoryWeightList),

		RomanjiName:   v.String(RomanjiName),
		KanjiName:     v.String(KanjiName),
		EnglishName:   v.String(EnglishName),
		OtherName:     v.String(OtherName),
		ShortNameList: v.List(ShortNameList),
		SynonymList:   v.List(SynonymList),

		Episodes:             v.Int(Episodes),
		HighestEpisodeNumber: v.Int(HighestEpisodeNumber),
		SpecialEpCount:       v.Int(SpecialEpCount),
		AirDate:              v.Int(AirDate),
		EndDate:              v.Int(EndDate),
		URL:                  v.String(URL),
		Picname:              v.String(Picname),
		CategoryIDList:       v.IntList(CategoryIDList),

		Rating:              v.Int(Rating),
		VoteCount:           v.Int(VoteCount),
		TempRating:          v.Int(TempRating),
		TempVoteCount:       v.Int(TempVoteCount),
		AverageReviewRating: v.Int(AverageReviewRating),
		ReviewCount:         v.Int(ReviewCount),
		AwardList:           v.List(AwardList),
		IsRestricted:        v.Bool(IsRestricted),

		AnimePlanetID:     v.Int(AnimePlanetID),
		ANNID:             v.Int(ANNID),
		AllCinemaID:       v.Int(AllCinemaID),
		AnimeNfoID:        v.String(AnimeNfoID),
		DateRecordUpdated: v.Int(DateRecordUpdated),

		CharacterIDList:     v.IntList(CharacterIDList),
		CreatorIDList:       v.IntList(CreatorIDList),
		MainCreatorIDList:   v.IntList(MainCreatorIDList),
		MainCreatorNameList: v.List(MainCreatorNameList),

		SpecialsCount: v.Int(SpecialsCount),
		CreditsCount:  v.Int(CreditsCount),
		OtherCount:    v.Int(OtherCount),
		TrailerCount:  v.Int(TrailerCount),
		ParodyCount:   v.Int(ParodyCount),
	}
}

// Kind decodes "230 ANIME" replies.
var Kind = codec.Kind[*Anime]{
	Name:   "anime",
	Code:   response.CodeAnime,
	Tables: []*mask.Table{Table},
	Build:  Build,
}

// Decode decodes an ANIME reply to a request that carried amask m.
func Decode(payload []byte, m mask.Mask) (*codec.Result[*Anime], error) {
	return codec.Decode(payload, Kind, m)
}
