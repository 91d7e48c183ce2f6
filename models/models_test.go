package models

import (
	"os"
	"testing"

	"postline/config"
	"postline/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	config.MYSQL_DSN = ""
	config.SQLITE_FILE = "file::memory:?cache=shared"
	db.Init()
	Init()
	os.Exit(m.Run())
}

func TestUserCreateAndLogin(t *testing.T) {
	user, err := UserCreate("leo", "Лев Толстой", "secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", user.Password)

	_, ok := UserLogin("leo", "wrong")
	assert.False(t, ok)
	loggedIn, ok := UserLogin("leo", "secret")
	require.True(t, ok)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestFollowGetOrCreateIsIdempotent(t *testing.T) {
	user, err := UserCreate("follower", "", "pass")
	require.NoError(t, err)
	author, err := UserCreate("writer", "", "pass")
	require.NoError(t, err)

	first, err := FollowGetOrCreate(user.ID, author.ID)
	require.NoError(t, err)
	second, err := FollowGetOrCreate(user.ID, author.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	db.Instance.Model(&Follow{}).
		Where("user_id = ? and author_id = ?", user.ID, author.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
	assert.True(t, IsFollowing(user.ID, author.ID))
}

func TestUnfollowMissingIsNoOp(t *testing.T) {
	user, err := UserCreate("lurker", "", "pass")
	require.NoError(t, err)
	author, err := UserCreate("celebrity", "", "pass")
	require.NoError(t, err)

	var before int64
	db.Instance.Model(&Follow{}).Count(&before)
	require.NoError(t, Unfollow(user.ID, author.ID))
	var after int64
	db.Instance.Model(&Follow{}).Count(&after)
	assert.Equal(t, before, after)
}

func TestGroupDeleteClearsPostGroup(t *testing.T) {
	author, err := UserCreate("grouped", "", "pass")
	require.NoError(t, err)
	group, err := GroupCreate("Проза", "proza", "Группа о прозе")
	require.NoError(t, err)

	post := Post{Text: "пост в группе", AuthorID: author.ID, GroupID: &group.ID}
	require.NoError(t, db.Instance.Create(&post).Error)

	require.NoError(t, db.Instance.Delete(&group).Error)

	reloaded, err := PostByID(post.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.GroupID)
}

func TestPostDeleteCascadesComments(t *testing.T) {
	author, err := UserCreate("commented", "", "pass")
	require.NoError(t, err)
	post := Post{Text: "пост с комментариями", AuthorID: author.ID}
	require.NoError(t, db.Instance.Create(&post).Error)
	comment := Comment{PostID: post.ID, AuthorID: author.ID, Text: "первый"}
	require.NoError(t, db.Instance.Create(&comment).Error)

	require.NoError(t, db.Instance.Delete(&post).Error)

	var count int64
	db.Instance.Model(&Comment{}).Where("post_id = ?", post.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestPostsOrderingNewestFirst(t *testing.T) {
	author, err := UserCreate("chrono", "", "pass")
	require.NoError(t, err)
	older := Post{Text: "старый", AuthorID: author.ID}
	require.NoError(t, db.Instance.Create(&older).Error)
	newer := Post{Text: "новый", AuthorID: author.ID}
	require.NoError(t, db.Instance.Create(&newer).Error)

	posts, err := PostsByAuthor(author.ID, 0, -1)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, newer.ID, posts[0].ID)
	assert.Equal(t, older.ID, posts[1].ID)
}

func TestPostCountsFollowGroupAndAuthor(t *testing.T) {
	author, err := UserCreate("counter", "", "pass")
	require.NoError(t, err)
	group1, err := GroupCreate("Группа 1", "gruppa-1", "")
	require.NoError(t, err)
	group2, err := GroupCreate("Группа 2", "gruppa-2", "")
	require.NoError(t, err)

	byAuthorBefore, err := PostsCountByAuthor(author.ID)
	require.NoError(t, err)
	byGroupBefore, err := PostsCountByGroup(group1.ID)
	require.NoError(t, err)

	// A copy, not &group1.ID: gorm writes the updated FK back through the
	// post's pointer, and aliasing would mutate group1.ID itself.
	gid := group1.ID
	post := Post{Text: "считаем", AuthorID: author.ID, GroupID: &gid}
	require.NoError(t, db.Instance.Create(&post).Error)

	byAuthor, err := PostsCountByAuthor(author.ID)
	require.NoError(t, err)
	assert.Equal(t, byAuthorBefore+1, byAuthor)
	byGroup, err := PostsCountByGroup(group1.ID)
	require.NoError(t, err)
	assert.Equal(t, byGroupBefore+1, byGroup)

	// Moving the post to another group moves the counts, total stays
	require.NoError(t, db.Instance.Model(&post).Update("group_id", group2.ID).Error)
	byGroup1, err := PostsCountByGroup(group1.ID)
	require.NoError(t, err)
	assert.Equal(t, byGroupBefore, byGroup1)
	byGroup2, err := PostsCountByGroup(group2.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), byGroup2)
	byAuthorAfter, err := PostsCountByAuthor(author.ID)
	require.NoError(t, err)
	assert.Equal(t, byAuthor, byAuthorAfter)
}

func TestPostsByFollowed(t *testing.T) {
	reader, err := UserCreate("reader", "", "pass")
	require.NoError(t, err)
	followed, err := UserCreate("followed-author", "", "pass")
	require.NoError(t, err)
	ignored, err := UserCreate("ignored-author", "", "pass")
	require.NoError(t, err)

	followedPost := Post{Text: "от избранного", AuthorID: followed.ID}
	require.NoError(t, db.Instance.Create(&followedPost).Error)
	ignoredPost := Post{Text: "мимо ленты", AuthorID: ignored.ID}
	require.NoError(t, db.Instance.Create(&ignoredPost).Error)

	_, err = FollowGetOrCreate(reader.ID, followed.ID)
	require.NoError(t, err)

	posts, err := PostsByFollowed(reader.ID, 0, -1)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, followedPost.ID, posts[0].ID)

	count, err := PostsCountByFollowed(reader.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCommentsNewestFirst(t *testing.T) {
	author, err := UserCreate("commenter", "", "pass")
	require.NoError(t, err)
	post := Post{Text: "обсуждаемый", AuthorID: author.ID}
	require.NoError(t, db.Instance.Create(&post).Error)

	first := Comment{PostID: post.ID, AuthorID: author.ID, Text: "раньше"}
	require.NoError(t, db.Instance.Create(&first).Error)
	second := Comment{PostID: post.ID, AuthorID: author.ID, Text: "позже"}
	require.NoError(t, db.Instance.Create(&second).Error)

	comments, err := CommentsForPost(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, second.ID, comments[0].ID)
}
