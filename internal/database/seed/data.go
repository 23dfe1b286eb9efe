package seed

import (
	"github.com/kiplangat-dev/catholicprayer/internal/entities"
)

// bundledPrayers is the fixed dataset inserted on first run.
var bundledPrayers = []entities.Prayer{
	{
		ID:    "our-father",
		Title: "Our Father (The Lord's Prayer)",
		Text: `Our Father, who art in heaven,
hallowed be thy name;
thy kingdom come;
thy will be done on earth as it is in heaven.
Give us this day our daily bread;
and forgive us our trespasses
as we forgive those who trespass against us;
and lead us not into temptation,
but deliver us from evil. Amen.`,
		Description: "The prayer Jesus taught his disciples",
		Category:    "daily",
		Language:    "English",
		Length:      entities.PrayerLengthShort,
		Tags:        []string{"basic", "essential", "mass", "rosary"},
		Favorite:    true,
	},
	{
		ID:    "hail-mary",
		Title: "Hail Mary",
		Text: `Hail Mary, full of grace,
the Lord is with thee.
Blessed art thou among women,
and blessed is the fruit of thy womb, Jesus.
Holy Mary, Mother of God,
pray for us sinners,
now and at the hour of our death. Amen.`,
		Description: "Traditional Catholic prayer to the Virgin Mary",
		Category:    "daily",
		Language:    "English",
		Length:      entities.PrayerLengthShort,
		Tags:        []string{"basic", "essential", "rosary", "marian"},
		Favorite:    true,
	},
	{
		ID:    "glory-be",
		Title: "Glory Be (Doxology)",
		Text: `Glory be to the Father,
and to the Son,
and to the Holy Spirit.
As it was in the beginning,
is now, and ever shall be,
world without end. Amen.`,
		Description: "Short prayer glorifying the Holy Trinity",
		Category:    "daily",
		Language:    "English",
		Length:      entities.PrayerLengthShort,
		Tags:        []string{"basic", "trinity", "mass", "rosary"},
		Favorite:    true,
	},
	{
		ID:    "apostles-creed",
		Title: "Apostles' Creed",
		Text: `I believe in God, the Father almighty,
Creator of heaven and earth,
and in Jesus Christ, his only Son, our Lord,
who was conceived by the Holy Spirit,
born of the Virgin Mary,
suffered under Pontius Pilate,
was crucified, died and was buried;
he descended into hell;
on the third day he rose again from the dead;
he ascended into heaven,
and is seated at the right hand of God the Father almighty;
from there he will come to judge the living and the dead.

I believe in the Holy Spirit,
the holy catholic Church,
the communion of saints,
the forgiveness of sins,
the resurrection of the body,
and life everlasting. Amen.`,
		Description: "Profession of Christian faith",
		Category:    "creed",
		Language:    "English",
		Length:      entities.PrayerLengthMedium,
		Tags:        []string{"creed", "belief", "rosary", "mass"},
		Favorite:    true,
	},
	{
		ID:    "nicene-creed",
		Title: "Nicene Creed",
		Text: `I believe in one God,
the Father almighty,
maker of heaven and earth,
of all things visible and invisible.

I believe in one Lord Jesus Christ,
the Only Begotten Son of God,
born of the Father before all ages.
God from God, Light from Light,
true God from true God,
begotten, not made,
consubstantial with the Father;
through him all things were made.
For us men and for our salvation
he came down from heaven...`,
		Description: "Profession of faith used in Mass",
		Category:    "creed",
		Language:    "English",
		Length:      entities.PrayerLengthLong,
		Tags:        []string{"creed", "mass", "belief"},
	},
	{
		ID:    "morning-offering",
		Title: "Morning Offering",
		Text: `O Jesus, through the Immaculate Heart of Mary,
I offer you my prayers, works, joys, and sufferings of this day
for all the intentions of your Sacred Heart,
in union with the Holy Sacrifice of the Mass throughout the world,
for the salvation of souls, the reparation of sins,
the reunion of all Christians,
and in particular for the intentions of the Holy Father this month. Amen.`,
		Description: "Prayer to offer the day to God",
		Category:    "morning",
		Language:    "English",
		Length:      entities.PrayerLengthMedium,
		Tags:        []string{"morning", "offering", "daily"},
		Favorite:    true,
	},
	{
		ID:    "prayer-to-guardian-angel",
		Title: "Prayer to Guardian Angel",
		Text: `Angel of God,
my guardian dear,
to whom God's love commits me here,
ever this day be at my side,
to light and guard, to rule and guide. Amen.`,
		Description: "Traditional prayer to one's guardian angel",
		Category:    "morning",
		Language:    "English",
		Length:      entities.PrayerLengthShort,
		Tags:        []string{"morning", "angel", "protection"},
	},
	{
		ID:    "evening-prayer",
		Title: "Evening Prayer",
		Text: `Lord, thank you for the blessings of this day.
Forgive me for any wrong I have done.
Watch over me and my loved ones through the night.
May your angels protect us,
and may I wake refreshed to serve you tomorrow.
In Jesus' name. Amen.`,
		Description: "Simple prayer before sleep",
		Category:    "evening",
		Language:    "English",
		Length:      entities.PrayerLengthShort,
		Tags:        []string{"evening", "night", "protection", "thanksgiving"},
		Favorite:    true,
	},
	{
		ID:    "examination-of-conscience",
		Title: "Examination of Conscience",
		Text: `My God, I am heartily sorry for having offended you,
and I detest all my sins because of your just punishments,
but most of all because they offend you, my God,
who are all good and deserving of all my love.
I firmly resolve, with the help of your grace,
to sin no more and to avoid the near occasions of sin. Amen.`,
		Description: "Prayer for examining one's conscience",
		Category:    "evening",
		Language:    "English",
		Length:      entities.PrayerLengthMedium,
		Tags:        []string{"evening", "examination", "contrition", "repentance"},
	},
	{
		ID:    "memorare",
		Title: "Memorare",
		Text: `Remember, O most gracious Virgin Mary,
that never was it known that anyone who fled to your protection,
implored your help, or sought your intercession was left unaided.
Inspired by this confidence, I fly unto you,
O Virgin of virgins, my mother.
To you do I come, before you I stand, sinful and sorrowful.
O Mother of the Word Incarnate,
despise not my petitions,
but in your mercy hear and answer me. Amen.`,
		Description: "Traditional prayer seeking Mary's intercession",
		Category:    "marian",
		Language:    "English",
		Length:      entities.PrayerLengthMedium,
		Tags:        []string{"marian", "intercession", "urgent"},
		Favorite:    true,
	},
	{
		ID:    "hail-holy-queen",
		Title: "Hail Holy Queen (Salve Regina)",
		Text: `Hail, holy Queen, Mother of mercy,
our life, our sweetness, and our hope.
To you do we cry, poor banished children of Eve.
To you do we send up our sighs,
mourning and weeping in this valley of tears.
Turn then, most gracious advocate,
your eyes of mercy toward us,
and after this, our exile,
show unto us the blessed fruit of your womb, Jesus.
O clement, O loving, O sweet Virgin Mary.

Pray for us, O holy Mother of God,
that we may be made worthy of the promises of Christ.`,
		Description: "Traditional Marian prayer concluding the Rosary",
		Category:    "marian",
		Language:    "English",
		Length:      entities.PrayerLengthMedium,
		Tags:        []string{"marian", "rosary", "conclusion"},
		Favorite:    true,
	},
	{
		ID:    "fatima-prayer",
		Title: "Fatima Prayer",
		Text: `O my Jesus, forgive us our sins,
save us from the fires of hell,
lead all souls to Heaven,
especially those who are in most need of Thy mercy.`,
		Description: "Prayer from Our Lady of Fatima",
		Category:    "rosary",
		Language:    "English",
		Length:      entities.PrayerLengthShort,
		Tags:        []string{"rosary", "fatima", "mercy"},
	},
	{
		ID:    "act-of-contrition",
		Title: "Act of Contrition",
		Text: `O my God, I am heartily sorry for having offended Thee,
and I detest all my sins because of thy just punishments,
but most of all because they offend Thee, my God,
who art all good and deserving of all my love.
I firmly resolve, with the help of Thy grace,
to sin no more and to avoid the near occasion of sin. Amen.`,
		Description: "Prayer of sorrow for sins",
		Category:    "sacraments",
		Language:    "English",
		Length:      entities.PrayerLengthMedium,
		Tags:        []string{"confession", "penance", "contrition", "sacraments"},
		Favorite:    true,
	},
	{
		ID:    "act-of-spiritual-communion",
		Title: "Act of Spiritual Communion",
		Text: `My Jesus, I believe that You are present in the Most Holy Sacrament.
I love You above all things, and I desire to receive You into my soul.
Since I cannot at this moment receive You sacramentally,
come at least spiritually into my heart.
I embrace You as if You were already there
and unite myself wholly to You.
Never permit me to be separated from You. Amen.`,
		Description: "Prayer for spiritual communion",
		Category:    "eucharist",
		Language:    "English",
		Length:      entities.PrayerLengthMedium,
		Tags:        []string{"eucharist", "communion", "spiritual"},
		Favorite:    true,
	},
	{
		ID:    "prayer-to-st-michael",
		Title: "Prayer to St. Michael the Archangel",
		Text: `St. Michael the Archangel,
defend us in battle.
Be our protection against the wickedness and snares of the devil.
May God rebuke him, we humbly pray,
and do thou, O Prince of the heavenly hosts,
by the power of God, cast into hell Satan,
and all the evil spirits,
who prowl about the world seeking the ruin of souls. Amen.`,
		Description: "Powerful prayer for protection against evil",
		Category:    "saints",
		Language:    "English",
		Length:      entities.PrayerLengthShort,
		Tags:        []string{"st-michael", "protection", "spiritual-warfare", "archangel"},
		Favorite:    true,
	},
	{
		ID:    "prayer-to-st-joseph",
		Title: "Prayer to St. Joseph",
		Text: `O St. Joseph, whose protection is so great, so strong, so prompt before the throne of God,
I place in you all my interests and desires.
O St. Joseph, do assist me by your powerful intercession,
and obtain for me from your divine Son all spiritual blessings,
through Jesus Christ, our Lord.
So that, having engaged here below your heavenly power,
I may offer my thanksgiving and homage to the most loving of Fathers.

O St. Joseph, I never weary contemplating you, and Jesus asleep in your arms;
I dare not approach while He reposes near your heart.
Press Him in my name and kiss His fine head for me and ask Him to return the kiss when I draw my dying breath.
St. Joseph, Patron of departing souls, pray for me. Amen.`,
		Description: "Traditional prayer to St. Joseph",
		Category:    "saints",
		Language:    "English",
		Length:      entities.PrayerLengthLong,
		Tags:        []string{"st-joseph", "patron", "family", "workers"},
	},
	{
		ID:    "prayer-for-healing",
		Title: "Prayer for Healing",
		Text: `Lord, You are the Divine Physician,
the Healer of our souls and bodies.
I come before You today asking for Your healing touch.
Whatever illness or suffering I am experiencing,
I place it in Your hands.
Grant me patience in my suffering,
and if it be Your will, restore me to health.
But above all, grant me the grace to say,
"Your will be done."
May my suffering be united with Yours on the cross
for the salvation of souls. Amen.`,
		Description: "Prayer for physical and spiritual healing",
		Category:    "healing",
		Language:    "English",
		Length:      entities.PrayerLengthMedium,
		Tags:        []string{"healing", "health", "sickness", "suffering"},
	},
	{
		ID:    "prayer-of-thanksgiving",
		Title: "Prayer of Thanksgiving",
		Text: `We give You thanks for all Your gifts, Almighty God,
living and reigning now and for ever. Amen.`,
		Description: "Simple prayer of thanksgiving",
		Category:    "thanksgiving",
		Language:    "English",
		Length:      entities.PrayerLengthShort,
		Tags:        []string{"thanksgiving", "gratitude", "blessings"},
	},
	{
		ID:    "family-prayer",
		Title: "Family Prayer",
		Text: `Heavenly Father, we come before You as a family.
Bless each member of our family.
Keep us safe in Your love.
Help us to love and support one another,
to forgive each other's faults,
and to grow in holiness together.
May our home be a place of peace, joy, and faith.
We ask this through Christ our Lord. Amen.`,
		Description: "Prayer for family unity and blessings",
		Category:    "family",
		Language:    "English",
		Length:      entities.PrayerLengthShort,
		Tags:        []string{"family", "home", "parents", "children"},
	},
	{
		ID:    "pater-noster",
		Title: "Pater Noster (Our Father in Latin)",
		Text: `Pater noster, qui es in caelis,
sanctificetur nomen tuum.
Adveniat regnum tuum.
Fiat voluntas tua,
sicut in caelo et in terra.
Panem nostrum quotidianum da nobis hodie,
et dimitte nobis debita nostra,
sicut et nos dimittimus debitoribus nostris.
Et ne nos inducas in tentationem,
sed libera nos a malo. Amen.`,
		Description: "Our Father in traditional Latin",
		Category:    "latin",
		Language:    "Latin",
		Length:      entities.PrayerLengthShort,
		Tags:        []string{"latin", "traditional", "mass"},
	},
	{
		ID:    "ave-maria-latin",
		Title: "Ave Maria (Hail Mary in Latin)",
		Text: `Ave Maria, gratia plena,
Dominus tecum.
Benedicta tu in mulieribus,
et benedictus fructus ventris tui, Iesus.
Sancta Maria, Mater Dei,
ora pro nobis peccatoribus,
nunc et in hora mortis nostrae. Amen.`,
		Description: "Hail Mary in traditional Latin",
		Category:    "latin",
		Language:    "Latin",
		Length:      entities.PrayerLengthShort,
		Tags:        []string{"latin", "marian", "rosary"},
	},
}

// bundledMysteries is the complete 20-entry rosary set, five per type.
var bundledMysteries = []entities.RosaryMystery{
	{ID: "joyful-1", MysteryType: entities.MysteryTypeJoyful, Number: 1, Title: "The Annunciation", Scripture: "Luke 1:26-38", Reflection: "The angel Gabriel announces to Mary that she will conceive the Son of God.", Fruit: "Humility"},
	{ID: "joyful-2", MysteryType: entities.MysteryTypeJoyful, Number: 2, Title: "The Visitation", Scripture: "Luke 1:39-56", Reflection: "Mary visits her cousin Elizabeth, who recognizes her as the mother of the Lord.", Fruit: "Love of Neighbor"},
	{ID: "joyful-3", MysteryType: entities.MysteryTypeJoyful, Number: 3, Title: "The Nativity", Scripture: "Luke 2:1-20", Reflection: "Jesus is born in a stable in Bethlehem and laid in a manger.", Fruit: "Poverty"},
	{ID: "joyful-4", MysteryType: entities.MysteryTypeJoyful, Number: 4, Title: "The Presentation", Scripture: "Luke 2:22-40", Reflection: "Mary and Joseph present the infant Jesus in the Temple.", Fruit: "Obedience"},
	{ID: "joyful-5", MysteryType: entities.MysteryTypeJoyful, Number: 5, Title: "The Finding in the Temple", Scripture: "Luke 2:41-52", Reflection: "After three days of searching, Mary and Joseph find the young Jesus teaching in the Temple.", Fruit: "Joy in Finding Jesus"},

	{ID: "sorrowful-1", MysteryType: entities.MysteryTypeSorrowful, Number: 1, Title: "The Agony in the Garden", Scripture: "Matthew 26:36-46", Reflection: "Jesus prays in Gethsemane while his disciples sleep.", Fruit: "Sorrow for Sin"},
	{ID: "sorrowful-2", MysteryType: entities.MysteryTypeSorrowful, Number: 2, Title: "The Scourging at the Pillar", Scripture: "John 19:1", Reflection: "Pilate has Jesus scourged.", Fruit: "Purity"},
	{ID: "sorrowful-3", MysteryType: entities.MysteryTypeSorrowful, Number: 3, Title: "The Crowning with Thorns", Scripture: "Matthew 27:27-31", Reflection: "The soldiers crown Jesus with thorns and mock him as king.", Fruit: "Moral Courage"},
	{ID: "sorrowful-4", MysteryType: entities.MysteryTypeSorrowful, Number: 4, Title: "The Carrying of the Cross", Scripture: "Luke 23:26-32", Reflection: "Jesus carries his cross to Calvary.", Fruit: "Patience"},
	{ID: "sorrowful-5", MysteryType: entities.MysteryTypeSorrowful, Number: 5, Title: "The Crucifixion", Scripture: "Luke 23:33-46", Reflection: "Jesus dies on the cross for the salvation of the world.", Fruit: "Perseverance"},

	{ID: "glorious-1", MysteryType: entities.MysteryTypeGlorious, Number: 1, Title: "The Resurrection", Scripture: "Matthew 28:1-10", Reflection: "Jesus rises from the dead on the third day.", Fruit: "Faith"},
	{ID: "glorious-2", MysteryType: entities.MysteryTypeGlorious, Number: 2, Title: "The Ascension", Scripture: "Acts 1:6-11", Reflection: "Jesus ascends into heaven in the sight of his apostles.", Fruit: "Hope"},
	{ID: "glorious-3", MysteryType: entities.MysteryTypeGlorious, Number: 3, Title: "The Descent of the Holy Spirit", Scripture: "Acts 2:1-4", Reflection: "The Holy Spirit descends upon the apostles at Pentecost.", Fruit: "Love"},
	{ID: "glorious-4", MysteryType: entities.MysteryTypeGlorious, Number: 4, Title: "The Assumption", Scripture: "Revelation 12:1", Reflection: "Mary is assumed body and soul into heaven.", Fruit: "Grace of a Happy Death"},
	{ID: "glorious-5", MysteryType: entities.MysteryTypeGlorious, Number: 5, Title: "The Coronation", Scripture: "Revelation 12:1", Reflection: "Mary is crowned Queen of Heaven and Earth.", Fruit: "Trust in Mary's Intercession"},

	{ID: "luminous-1", MysteryType: entities.MysteryTypeLuminous, Number: 1, Title: "The Baptism of Jesus", Scripture: "Matthew 3:13-17", Reflection: "Jesus is baptized by John in the Jordan.", Fruit: "Openness to the Holy Spirit"},
	{ID: "luminous-2", MysteryType: entities.MysteryTypeLuminous, Number: 2, Title: "The Wedding at Cana", Scripture: "John 2:1-11", Reflection: "At Mary's request, Jesus performs his first miracle.", Fruit: "To Jesus through Mary"},
	{ID: "luminous-3", MysteryType: entities.MysteryTypeLuminous, Number: 3, Title: "The Proclamation of the Kingdom", Scripture: "Mark 1:14-15", Reflection: "Jesus proclaims the Kingdom of God and calls all to conversion.", Fruit: "Repentance and Trust in God"},
	{ID: "luminous-4", MysteryType: entities.MysteryTypeLuminous, Number: 4, Title: "The Transfiguration", Scripture: "Luke 9:28-36", Reflection: "Jesus is transfigured in glory on Mount Tabor.", Fruit: "Desire for Holiness"},
	{ID: "luminous-5", MysteryType: entities.MysteryTypeLuminous, Number: 5, Title: "The Institution of the Eucharist", Scripture: "Luke 22:14-20", Reflection: "Jesus gives his Body and Blood at the Last Supper.", Fruit: "Adoration"},
}

// bundledSaints covers the feast days the app ships with.
var bundledSaints = []entities.Saint{
	{
		ID:          "mary-mother-god",
		Name:        "Solemnity of Mary, Mother of God",
		FeastDay:    "01-01",
		Description: "The Blessed Virgin Mary is honored under this title for her role as the mother of Jesus Christ, the Son of God.",
		Patronage:   []string{"mothers", "universal church", "priests"},
		Prayer: `Holy Mary, Mother of God,
pray for us sinners,
now and at the hour of our death.
Amen.`,
		Popularity: 100,
	},
	{
		ID:          "john-neumann",
		Name:        "St. John Neumann",
		FeastDay:    "01-05",
		Description: "Bishop and missionary known for his work with immigrants and establishing the Catholic school system in the United States.",
		Patronage:   []string{"immigrants", "educators", "bishops", "Catholic education"},
		Prayer: `O God, who called the Bishop Saint John Neumann,
renowned for his charity and pastoral service,
to shepherd your people in America,
grant by his intercession
that, as we foster the Christian education of youth
and are strengthened by the witness of brotherly love,
we may constantly increase the family of your Church.
Through our Lord Jesus Christ, your Son,
who lives and reigns with you in the unity of the Holy Spirit,
God, for ever and ever. Amen.`,
		Popularity: 85,
	},
	{
		ID:          "francis-de-sales",
		Name:        "St. Francis de Sales",
		FeastDay:    "01-24",
		Description: "Bishop and Doctor of the Church, known for his gentle approach to spiritual direction.",
		Patronage:   []string{"writers", "journalists"},
		Popularity:  70,
	},
	{
		ID:          "thomas-aquinas",
		Name:        "St. Thomas Aquinas",
		FeastDay:    "01-28",
		Description: "Doctor of the Church and philosopher, author of the Summa Theologiae.",
		Patronage:   []string{"students", "universities"},
		Popularity:  80,
	},
	{
		ID:          "valentine",
		Name:        "St. Valentine",
		FeastDay:    "02-14",
		Description: "Martyr of the early Church, patron of love.",
		Patronage:   []string{"love", "happy marriages"},
		Popularity:  75,
	},
	{
		ID:          "patrick",
		Name:        "St. Patrick",
		FeastDay:    "03-17",
		Description: "Apostle of Ireland who brought Christianity to the island.",
		Patronage:   []string{"Ireland", "engineers"},
		Popularity:  90,
	},
	{
		ID:          "joseph",
		Name:        "St. Joseph",
		FeastDay:    "03-19",
		Description: "Husband of Mary and foster father of Jesus.",
		Patronage:   []string{"workers", "fathers", "the Church"},
		Popularity:  95,
	},
	{
		ID:          "teresa-calcutta",
		Name:        "St. Teresa of Calcutta",
		FeastDay:    "09-05",
		Description: "Founder of the Missionaries of Charity, who served the poorest of the poor in Calcutta.",
		Patronage:   []string{"the poor", "volunteers"},
		Popularity:  88,
	},
	{
		ID:          "therese-lisieux",
		Name:        "St. Therese of Lisieux",
		FeastDay:    "10-01",
		Description: "Doctor of the Church known as the Little Flower, famous for her little way of spiritual childhood.",
		Patronage:   []string{"missionaries", "florists"},
		Popularity:  85,
	},
	{
		ID:          "francis-assisi",
		Name:        "St. Francis of Assisi",
		FeastDay:    "10-04",
		Description: "Founder of the Franciscan Order, renowned for his poverty and love of creation.",
		Patronage:   []string{"animals", "ecology"},
		Popularity:  92,
	},
}

// BundledPrayerIDs returns the ids of all seeded prayers, in seed order.
func BundledPrayerIDs() []string {
	ids := make([]string, 0, len(bundledPrayers))
	for _, p := range bundledPrayers {
		ids = append(ids, p.ID)
	}
	return ids
}
