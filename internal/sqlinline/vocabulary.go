package sqlinline

const QListVocabularyTerms = `--sql 3c1f6a2e-8d4b-4f0e-9a57-1b2d6e8c4f90
select kind, term, coalesce(category, '')
from vocabulary_terms
where enabled
order by kind, category nulls first, position, term;
`

const QUpsertVocabularyTerm = `--sql a7e04b19-5c62-4d3f-8e1a-92f0c3d5b6e4
insert into vocabulary_terms(kind, term, category, position, enabled)
values ($1::text, $2::text, nullif($3::text, ''), $4::int, true)
on conflict (kind, term, coalesce(category, ''))
do update set position = excluded.position, enabled = true;
`
