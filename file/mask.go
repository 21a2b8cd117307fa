// Package file describes the FILE command.
package file

import "github.com/anisan-cli/anidb/mask"

// fmask, byte 1
const (
	BitAID           mask.Bit = 38
	BitEID           mask.Bit = 37
	BitGID           mask.Bit = 36
	BitMylistID      mask.Bit = 35
	BitOtherEpisodes mask.Bit = 34
	BitIsDeprecated  mask.Bit = 33
	BitState         mask.Bit = 32
)

// fmask, byte 2
const (
	BitSize             mask.Bit = 31
	BitED2K             mask.Bit = 30
	BitMD5              mask.Bit = 29
	BitSHA1             mask.Bit = 28
	BitCRC32            mask.Bit = 27
	BitVideoColourDepth mask.Bit = 25
)

// fmask, byte 3
const (
	BitQuality          mask.Bit = 23
	BitSource           mask.Bit = 22
	BitAudioCodecList   mask.Bit = 21
	BitAudioBitrateList mask.Bit = 20
	BitVideoCodec       mask.Bit = 19
	BitVideoBitrate     mask.Bit = 18
	BitVideoResolution  mask.Bit = 17
	BitFileType         mask.Bit = 16
)

// fmask, byte 4
const (
	BitDubLanguage     mask.Bit = 15
	BitSubLanguage     mask.Bit = 14
	BitLengthInSeconds mask.Bit = 13
	BitDescription     mask.Bit = 12
	BitAiredDate       mask.Bit = 11
	BitAniDBFileName   mask.Bit = 8
)

// fmask, byte 5
const (
	BitMylistState     mask.Bit = 7
	BitMylistFilestate mask.Bit = 6
	BitMylistViewed    mask.Bit = 5
	BitMylistViewdate  mask.Bit = 4
	BitMylistStorage   mask.Bit = 3
	BitMylistSource    mask.Bit = 2
	BitMylistOther     mask.Bit = 1
)

// file amask, bytes 1 to 4
const (
	BitAnimeTotalEpisodes   mask.Bit = 31
	BitHighestEpisodeNumber mask.Bit = 30
	BitYear                 mask.Bit = 29
	BitType                 mask.Bit = 28
	BitRelatedAIDList       mask.Bit = 27
	BitRelatedAIDType       mask.Bit = 26
	BitCategoryList         mask.Bit = 25

	BitRomanjiName   mask.Bit = 23
	BitKanjiName     mask.Bit = 22
	BitEnglishName   mask.Bit = 21
	BitOtherName     mask.Bit = 20
	BitShortNameList mask.Bit = 19
	BitSynonymList   mask.Bit = 18

	BitEpNo             mask.Bit = 15
	BitEpName           mask.Bit = 14
	BitEpRomanjiName    mask.Bit = 13
	BitEpKanjiName      mask.Bit = 12
	BitEpisodeRating    mask.Bit = 11
	BitEpisodeVoteCount mask.Bit = 10

	BitGroupName            mask.Bit = 7
	BitGroupShortName       mask.Bit = 6
	BitDateAIDRecordUpdated mask.Bit = 0
)

// Field identifiers. They are unique across both tables.
const (
	FID = "fid"

	AID              = "aid"
	EID              = "eid"
	GID              = "gid"
	MylistID         = "mylist_id"
	OtherEpisodes    = "other_episodes"
	IsDeprecated     = "is_deprecated"
	State            = "state"
	Size             = "size"
	ED2K             = "ed2k"
	MD5              = "md5"
	SHA1             = "sha1"
	CRC32            = "crc32"
	VideoColourDepth = "video_colour_depth"
	Quality          = "quality"
	Source           = "source"
	AudioCodecList   = "audio_codec_list"
	AudioBitrateList = "audio_bitrate_list"
	VideoCodec       = "video_codec"
	VideoBitrate     = "video_bitrate"
	VideoResolution  = "video_resolution"
	FileType         = "file_type"
	DubLanguage      = "dub_language"
	SubLanguage      = "sub_language"
	LengthInSeconds  = "length_in_seconds"
	Description      = "description"
	AiredDate        = "aired_date"
	AniDBFileName    = "anidb_file_name"
	MylistState      = "mylist_state"
	MylistFilestate  = "mylist_filestate"
	MylistViewed     = "mylist_viewed"
	MylistViewdate   = "mylist_viewdate"
	MylistStorage    = "mylist_storage"
	MylistSource     = "mylist_source"
	MylistOther      = "mylist_other"

	AnimeTotalEpisodes   = "anime_total_episodes"
	HighestEpisodeNumber = "highest_episode_number"
	Year                 = "year"
	Type                 = "type"
	RelatedAIDList       = "related_aid_list"
	RelatedAIDType       = "related_aid_type"
	CategoryList         = "category_list"
	RomanjiName          = "romanji_name"
	KanjiName            = "kanji_name"
	EnglishName          = "english_name"
	OtherName            = "other_name"
	ShortNameList        = "short_name_list"
	SynonymList          = "synonym_list"
	EpNo                 = "epno"
	EpName               = "ep_name"
	EpRomanjiName        = "ep_romanji_name"
	EpKanjiName          = "ep_kanji_name"
	EpisodeRating        = "episode_rating"
	EpisodeVoteCount     = "episode_vote_count"
	GroupName            = "group_name"
	GroupShortName       = "group_short_name"
	DateAIDRecordUpdated = "date_aid_record_updated"
)

// FIDField leads every FILE data line.
var FIDField = mask.Field{ID: FID, Type: mask.Int}

// FTable is the fmask table.
var FTable = mask.NewTable("fmask", 5,
	mask.Field{Bit: BitAID, ID: AID, Type: mask.Int},
	mask.Field{Bit: BitEID, ID: EID, Type: mask.Int},
	mask.Field{Bit: BitGID, ID: GID, Type: mask.Int},
	mask.Field{Bit: BitMylistID, ID: MylistID, Type: mask.Int},
	mask.Field{Bit: BitOtherEpisodes, ID: OtherEpisodes, Type: mask.List, Sep: "'"},
	mask.Field{Bit: BitIsDeprecated, ID: IsDeprecated, Type: mask.Bool},
	mask.Field{Bit: BitState, ID: State, Type: mask.Int},

	mask.Field{Bit: BitSize, ID: Size, Type: mask.Int},
	mask.Field{Bit: BitED2K, ID: ED2K, Type: mask.String},
	mask.Field{Bit: BitMD5, ID: MD5, Type: mask.String},
	mask.Field{Bit: BitSHA1, ID: SHA1, Type: mask.String},
	mask.Field{Bit: BitCRC32, ID: CRC32, Type: mask.String},
	mask.Field{Bit: BitVideoColourDepth, ID: VideoColourDepth, Type: mask.String},

	mask.Field{Bit: BitQuality, ID: Quality, Type: mask.String},
	mask.Field{Bit: BitSource, ID: Source, Type: mask.String},
	mask.Field{Bit: BitAudioCodecList, ID: AudioCodecList, Type: mask.List, Sep: "'"},
	mask.Field{Bit: BitAudioBitrateList, ID: AudioBitrateList, Type: mask.IntList, Sep: "'"},
	mask.Field{Bit: BitVideoCodec, ID: VideoCodec, Type: mask.String},
	mask.Field{Bit: BitVideoBitrate, ID: VideoBitrate, Type: mask.Int},
	mask.Field{Bit: BitVideoResolution, ID: VideoResolution, Type: mask.String},
	mask.Field{Bit: BitFileType, ID: FileType, Type: mask.String},

	mask.Field{Bit: BitDubLanguage, ID: DubLanguage, Type: mask.String},
	mask.Field{Bit: BitSubLanguage, ID: SubLanguage, Type: mask.String},
	mask.Field{Bit: BitLengthInSeconds, ID: LengthInSeconds, Type: mask.Int},
	mask.Field{Bit: BitDescription, ID: Description, Type: mask.String},
	mask.Field{Bit: BitAiredDate, ID: AiredDate, Type: mask.Int},
	mask.Field{Bit: BitAniDBFileName, ID: AniDBFileName, Type: mask.String},

	mask.Field{Bit: BitMylistState, ID: MylistState, Type: mask.Int},
	mask.Field{Bit: BitMylistFilestate, ID: MylistFilestate, Type: mask.Int},
	mask.Field{Bit: BitMylistViewed, ID: MylistViewed, Type: mask.Int},
	mask.Field{Bit: BitMylistViewdate, ID: MylistViewdate, Type: mask.Int},
	mask.Field{Bit: BitMylistStorage, ID: MylistStorage, Type: mask.String},
	mask.Field{Bit: BitMylistSource, ID: MylistSource, Type: mask.String},
	mask.Field{Bit: BitMylistOther, ID: MylistOther, Type: mask.String},
)

// ATable is the file amask table: anime, episode and group data sent along with a file.
var ATable = mask.NewTable("file_amask", 4,
	mask.Field{Bit: BitAnimeTotalEpisodes, ID: AnimeTotalEpisodes, Type: mask.Int},
	mask.Field{Bit: BitHighestEpisodeNumber, ID: HighestEpisodeNumber, Type: mask.Int},
	mask.Field{Bit: BitYear, ID: Year, Type: mask.String},
	mask.Field{Bit: BitType, ID: Type, Type: mask.String},
	mask.Field{Bit: BitRelatedAIDList, ID: RelatedAIDList, Type: mask.IntList, Sep: "'"},
	mask.Field{Bit: BitRelatedAIDType, ID: RelatedAIDType, Type: mask.IntList, Sep: "'"},
	mask.Field{Bit: BitCategoryList, ID: CategoryList, Type: mask.List},

	mask.Field{Bit: BitRomanjiName, ID: RomanjiName, Type: mask.String},
	mask.Field{Bit: BitKanjiName, ID: KanjiName, Type: mask.String},
	mask.Field{Bit: BitEnglishName, ID: EnglishName, Type: mask.String},
	mask.Field{Bit: BitOtherName, ID: OtherName, Type: mask.String},
	mask.Field{Bit: BitShortNameList, ID: ShortNameList, Type: mask.List, Sep: "'"},
	mask.Field{Bit: BitSynonymList, ID: SynonymList, Type: mask.List, Sep: "'"},

	mask.Field{Bit: BitEpNo, ID: EpNo, Type: mask.String},
	mask.Field{Bit: BitEpName, ID: EpName, Type: mask.String},
	mask.Field{Bit: BitEpRomanjiName, ID: EpRomanjiName, Type: mask.String},
	mask.Field{Bit: BitEpKanjiName, ID: EpKanjiName, Type: mask.String},
	mask.Field{Bit: BitEpisodeRating, ID: EpisodeRating, Type: mask.Int},
	mask.Field{Bit: BitEpisodeVoteCount, ID: EpisodeVoteCount, Type: mask.Int},

	mask.Field{Bit: BitGroupName, ID: GroupName, Type: mask.String},
	mask.Field{Bit: BitGroupShortName, ID: GroupShortName, Type: mask.String},
	mask.Field{Bit: BitDateAIDRecordUpdated, ID: DateAIDRecordUpdated, Type: mask.Int},
)

// DefaultFMask selects the ids, the size and the ed2k hash.
var DefaultFMask = FTable.Empty().With(
	BitAID, BitEID, BitGID,
	BitSize, BitED2K,
)

// DefaultAMask selects the romanji name, episode number and name, and group name.
var DefaultAMask = ATable.Empty().With(
	BitRomanjiName, BitEnglishName,
	BitEpNo, BitEpName,
	BitGroupName,
)
