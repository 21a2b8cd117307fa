// Package anime describes the ANIME command: its amask table and the record built from its replies.
package anime

import "github.com/anisan-cli/anidb/mask"

// Byte 1
const (
	BitAID                mask.Bit = 55
	BitYear               mask.Bit = 53
	BitType               mask.Bit = 52
	BitRelatedAIDList     mask.Bit = 51
	BitRelatedAIDType     mask.Bit = 50
	BitCategoryList       mask.Bit = 49
	BitCategoryWeightList mask.Bit = 48
)

// Byte 2
const (
	BitRomanjiName   mask.Bit = 47
	BitKanjiName     mask.Bit = 46
	BitEnglishName   mask.Bit = 45
	BitOtherName     mask.Bit = 44
	BitShortNameList mask.Bit = 43
	BitSynonymList   mask.Bit = 42
)

// Byte 3
const (
	BitEpisodes             mask.Bit = 39
	BitHighestEpisodeNumber mask.Bit = 38
	BitSpecialEpCount       mask.Bit = 37
	BitAirDate              mask.Bit = 36
	BitEndDate              mask.Bit = 35
	BitURL                  mask.Bit = 34
	BitPicname              mask.Bit = 33
	BitCategoryIDList       mask.Bit = 32
)

// Byte 4
const (
	BitRating              mask.Bit = 31
	BitVoteCount           mask.Bit = 30
	BitTempRating          mask.Bit = 29
	BitTempVoteCount       mask.Bit = 28
	BitAverageReviewRating mask.Bit = 27
	BitReviewCount         mask.Bit = 26
	BitAwardList           mask.Bit = 25
	BitIsRestricted        mask.Bit = 24
)

// Byte 5
const (
	BitAnimePlanetID     mask.Bit = 23
	BitANNID             mask.Bit = 22
	BitAllCinemaID       mask.Bit = 21
	BitAnimeNfoID        mask.Bit = 20
	BitDateRecordUpdated mask.Bit = 16
)

// Byte 6
const (
	BitCharacterIDList     mask.Bit = 15
	BitCreatorIDList       mask.Bit = 14
	BitMainCreatorIDList   mask.Bit = 13
	BitMainCreatorNameList mask.Bit = 12
)

// Byte 7
const (
	BitSpecialsCount mask.Bit = 7
	BitCreditsCount  mask.Bit = 6
	BitOtherCount    mask.Bit = 5
	BitTrailerCount  mask.Bit = 4
	BitParodyCount   mask.Bit = 3
)

// Field identifiers.
const (
	AID                  = "aid"
	Year                 = "year"
	Type                 = "type"
	RelatedAIDList       = "related_aid_list"
	RelatedAIDType       = "related_aid_type"
	CategoryList         = "category_list"
	CategoryWeightList   = "category_weight_list"
	RomanjiName          = "romanji_name"
	KanjiName            = "kanji_name"
	EnglishName          = "english_name"
	OtherName            = "other_name"
	ShortNameList        = "short_name_list"
	SynonymList          = "synonym_list"
	Episodes             = "episodes"
	HighestEpisodeNumber = "highest_episode_number"
	SpecialEpCount       = "special_ep_count"
	AirDate              = "air_date"
	EndDate              = "end_date"
	URL                  = "url"
	Picname              = "picname"
	CategoryIDList       = "category_id_list"
	Rating               = "rating"
	VoteCount            = "vote_count"
	TempRating           = "temp_rating"
	TempVoteCount        = "temp_vote_count"
	AverageReviewRating  = "average_review_rating"
	ReviewCount          = "review_count"
	AwardList            = "award_list"
	IsRestricted         = "is_restricted"
	AnimePlanetID        = "animeplanet_id"
	ANNID                = "ann_id"
	AllCinemaID          = "allcinema_id"
	AnimeNfoID           = "animenfo_id"
	DateRecordUpdated    = "date_record_updated"
	CharacterIDList      = "character_id_list"
	CreatorIDList        = "creator_id_list"
	MainCreatorIDList    = "main_creator_id_list"
	MainCreatorNameList  = "main_creator_name_list"
	SpecialsCount        = "specials_count"
	CreditsCount         = "credits_count"
	OtherCount           = "other_count"
	TrailerCount         = "trailer_count"
	ParodyCount          = "parody_count"
)

// Table is the amask table. Unlisted positions are reserved.
var Table = mask.NewTable("anime", 7,
	mask.Field{Bit: BitAID, ID: AID, Type: mask.Int},
	mask.Field{Bit: BitYear, ID: Year, Type: mask.String},
	mask.Field{Bit: BitType, ID: Type, Type: mask.String},
	mask.Field{Bit: BitRelatedAIDList, ID: RelatedAIDList, Type: mask.IntList, Sep: "'"},
	mask.Field{Bit: BitRelatedAIDType, ID: RelatedAIDType, Type: mask.IntList, Sep: "'"},
	mask.Field{Bit: BitCategoryList, ID: CategoryList, Type: mask.List},
	mask.Field{Bit: BitCategoryWeightList, ID: CategoryWeightList, Type: mask.IntList},

	mask.Field{Bit: BitRomanjiName, ID: RomanjiName, Type: mask.String},
	mask.Field{Bit: BitKanjiName, ID: KanjiName, Type: mask.String},
	mask.Field{Bit: BitEnglishName, ID: EnglishName, Type: mask.String},
	mask.Field{Bit: BitOtherName, ID: OtherName, Type: mask.String},
	mask.Field{Bit: BitShortNameList, ID: ShortNameList, Type: mask.List, Sep: "'"},
	mask.Field{Bit: BitSynonymList, ID: SynonymList, Type: mask.List, Sep: "'"},

	mask.Field{Bit: BitEpisodes, ID: Episodes, Type: mask.Int},
	mask.Field{Bit: BitHighestEpisodeNumber, ID: HighestEpisodeNumber, Type: mask.Int},
	mask.Field{Bit: BitSpecialEpCount, ID: SpecialEpCount, Type: mask.Int},
	mask.Field{Bit: BitAirDate, ID: AirDate, Type: mask.Int},
	mask.Field{Bit: BitEndDate, ID: EndDate, Type: mask.Int},
	mask.Field{Bit: BitURL, ID: URL, Type: mask.String},
	mask.Field{Bit: BitPicname, ID: Picname, Type: mask.String},
	mask.Field{Bit: BitCategoryIDList, ID: CategoryIDList, Type: mask.IntList},

	mask.Field{Bit: BitRating, ID: Rating, Type: mask.Int},
	mask.Field{Bit: BitVoteCount, ID: VoteCount, Type: mask.Int},
	mask.Field{Bit: BitTempRating, ID: TempRating, Type: mask.Int},
	mask.Field{Bit: BitTempVoteCount, ID: TempVoteCount, Type: mask.Int},
	mask.Field{Bit: BitAverageReviewRating, ID: AverageReviewRating, Type: mask.Int},
	mask.Field{Bit: BitReviewCount, ID: ReviewCount, Type: mask.Int},
	mask.Field{Bit: BitAwardList, ID: AwardList, Type: mask.List, Sep: "'"},
	mask.Field{Bit: BitIsRestricted, ID: IsRestricted, Type: mask.Bool},

	mask.Field{Bit: BitAnimePlanetID, ID: AnimePlanetID, Type: mask.Int},
	mask.Field{Bit: BitANNID, ID: ANNID, Type: mask.Int},
	mask.Field{Bit: BitAllCinemaID, ID: AllCinemaID, Type: mask.Int},
	mask.Field{Bit: BitAnimeNfoID, ID: AnimeNfoID, Type: mask.String},
	mask.Field{Bit: BitDateRecordUpdated, ID: DateRecordUpdated, Type: mask.Int},

	mask.Field{Bit: BitCharacterIDList, ID: CharacterIDList, Type: mask.IntList},
	mask.Field{Bit: BitCreatorIDList, ID: CreatorIDList, Type: mask.IntList},
	mask.Field{Bit: BitMainCreatorIDList, ID: MainCreatorIDList, Type: mask.IntList, Sep: "'"},
	mask.Field{Bit: BitMainCreatorNameList, ID: MainCreatorNameList, Type: mask.List, Sep: "'"},

	mask.Field{Bit: BitSpecialsCount, ID: SpecialsCount, Type: mask.Int},
	mask.Field{Bit: BitCreditsCount, ID: CreditsCount, Type: mask.Int},
	mask.Field{Bit: BitOtherCount, ID: OtherCount, Type: mask.Int},
	mask.Field{Bit: BitTrailerCount, ID: TrailerCount, Type: mask.Int},
	mask.Field{Bit: BitParodyCount, ID: ParodyCount, Type: mask.Int},
)

// DefaultMask selects ids, names, episode counts and ratings.
var DefaultMask = Table.Empty().With(
	BitAID, BitYear, BitType, BitCategoryList,
	BitRomanjiName, BitKanjiName, BitEnglishName, BitOtherName,
	BitEpisodes, BitHighestEpisodeNumber, BitSpecialEpCount,
	BitRating, BitVoteCount, BitTempRating, BitTempVoteCount, BitAverageReviewRating, BitReviewCount,
)
